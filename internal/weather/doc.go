package weather

// Package weather fetches current conditions from the Open-Meteo API and
// keeps them fresh on a fixed poll interval. It resolves the device location
// via IP geolocation or city search, caches the last good report in bbolt so
// a restart can show something before the first fetch, and propagates updates
// to the UI through a callback.
