package api

import (
	"context"
	"net/http"
	"strings"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/cred-audit/lgctx"
)

// ActorHeader carries the id of the authenticated user, set by the gateway
// in front of the API.
const ActorHeader = "X-Actor-Id"

type actorKey struct{}

func withLogger(logger lager.Logger, route string, handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := logger.Session("handle-request", lager.Data{
			"route":  route,
			"method": r.Method,
		})

		handler.ServeHTTP(w, r.WithContext(lgctx.NewContext(r.Context(), session)))
	})
}

func requireActor(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := strings.TrimSpace(r.Header.Get(ActorHeader))
		if actor == "" {
			lgctx.FromContext(r.Context()).Info("missing-actor")
			writeErrorMessage(w, r, http.StatusUnauthorized, "missing "+ActorHeader+" header")
			return
		}

		ctx := context.WithValue(r.Context(), actorKey{}, actor)
		ctx = lgctx.NewContext(ctx, lgctx.WithData(ctx, lager.Data{"actor": actor}))

		handler.ServeHTTP(w, r.WithContext(ctx))
	})
}

func actorFrom(r *http.Request) string {
	actor, _ := r.Context().Value(actorKey{}).(string)
	return actor
}
