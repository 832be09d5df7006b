// Package http is the REST API of the bracket tool.
//
// Every route is mounted twice, at the root and under /api, so the service
// works behind proxies that strip the prefix and behind ones that keep it.
// Errors leave the package as {"detail": "..."} bodies; statusFromError maps
// service and store sentinels onto status codes.
package http
