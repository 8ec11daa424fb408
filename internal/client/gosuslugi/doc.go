// Package gosuslugi provides a Go client for the public web API of the
// housing registry dom.gosuslugi.ru (GIS ZhKKh).
// It fetches management company licenses by region, organizations by INN
// or GUID, house actuality records by house code and home managements by
// organization. List-style operations return lazy sequences that issue one
// request per element pulled and never prefetch.
// Failures are reported as ConnectivityError, RemoteServiceError or
// DecodeError, nothing is retried.
package gosuslugi
