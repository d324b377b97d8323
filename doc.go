// Package lingo resolves a locale per inbound request and translates keys
// against self-healing file-based catalogs.
//
// The engine runs an ordered chain of detection strategies (query
// parameter, session, cookie, subdomain, Accept-Language header, process
// environment) over a narrow request interface, validates every candidate
// against the configured locale set, and falls back to the default locale
// when nothing matches. Translation lookups go through two catalog tiers:
// a lazily loaded, path-cached unit catalog per (base dir, sub-dir,
// locale), and a shared catalog per locale preloaded once at construction.
//
// A key unknown to both tiers is never an error: the key text itself is
// returned, and an empty placeholder for the key is written to every
// configured locale's catalog file so translators can fill the gaps later.
// All failure modes degrade the same way: a missing or malformed catalog
// is an empty catalog, a failed write keeps the in-memory fallback, so a
// localization problem can never fail a request.
//
// # Basic Usage
//
//	engine, err := lingo.New(
//		lingo.WithLocales("en", "ru"),
//		lingo.WithDefaultLocale("en"),
//		lingo.WithBaseDir("locales"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
//		t := lingo.FromContext(r.Context())
//		fmt.Fprintln(w, t.T("greeting"))
//	})
//	http.ListenAndServe(":8080", lingo.Middleware(engine)(mux))
//
// # Catalog Files
//
// Catalogs live at <baseDir>/<directory>/<locale>.<ext> (unit) and
// <jointDir>/<locale>.<ext> (shared), as JSON or YAML. Files may be
// nested for readability; keys are flattened with dot notation in memory:
//
//	{
//	    "buttons": {
//	        "save": "Save"
//	    }
//	}
//
//	t.T("buttons.save") // "Save"
//
// # Configuration
//
// Everything is configurable through functional options, or from the
// environment via NewFromEnv (LINGO_LOCALES, LINGO_BASE_DIR, and friends).
package lingo
