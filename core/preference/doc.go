// Package preference holds a visitor's locale and theme and persists them.
//
// A Preferences value is the single handle through which handlers read and
// change the active locale and theme. It is loaded from a Store at the start
// of a request:
//
//	store := preference.Chain{
//		preference.NewCookieStore(cookies, w, r),
//		redisStore.For(visitorID),
//	}
//	prefs := preference.New(translations, store, preference.WithLogger(log))
//	prefs.Load(ctx, i18n.PreferredLanguage(r.Header.Get("Accept-Language")))
//
//	prefs.SetLocale(ctx, "ar") // true; Direction() is now "rtl"
//	prefs.SetLocale(ctx, "de") // false; logged, nothing changes
//
// Values are stored under "portfolio.locale" (a language code) and "darkMode"
// (a JSON boolean). Failing to read or write the store never fails a request:
// reads fall back to defaults and write errors are logged.
package preference
