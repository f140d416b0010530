// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires the HTTP routes to their handlers.

# Usage

	mux, err := router.NewRouter(dbConn, cfg)
	if err != nil {
		log.Fatal(err)
	}
	server := http.Server{Handler: middleware.CORS(mux)}

NewRouter builds the voting core, the admin predicate from the
configuration, and all handlers, then registers routes using Go 1.22+
method patterns. All business routes are wrapped in request logging.

# Routes

	GET    /health
	GET    /films
	POST   /films
	DELETE /films/{title}
	POST   /votes
	GET    /votes/me
	POST   /rounds
	GET    /rounds/active
	GET    /rounds/{id}/results
	GET    /rounds/{id}/winner
	GET    /results
	GET    /winner
	GET    /
*/
package router
