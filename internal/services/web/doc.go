// Package web serves the public marketing surface of the CRM.
//
// It hosts the landing page, which renders the product pitch for anonymous
// visitors and sends signed-in visitors on to the dashboard, plus the health
// check, metrics endpoint, and embedded static assets.
package web
