// Package web serves the GEVP dashboard to a browser on the local machine.
//
// It shares the client core with the console: one API client, one session
// store and one preferences store, all belonging to the local operator. Pages
// are rendered server side from embedded html/template files; gorilla/mux
// routes requests and guard.Middleware protects /dashboard and /admin.
//
// Mutations follow post/redirect/get. Their outcome is carried to the next
// page in a one-shot flash cookie.
package web
