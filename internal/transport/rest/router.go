package rest

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/mpetrenko/tasktrail/internal/config"
	"github.com/mpetrenko/tasktrail/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth     *AuthHandler
	Projects *ProjectHandler
	Tags     *TagHandler
	Tasks    *TaskHandler
	Shared   *SharedHandler
	Changes  *ChangeHandler
	Health   *HealthHandler
}

// NewRouter builds the full HTTP routing table. All resource endpoints sit
// behind the auth middleware; /auth/register, /auth/login, /auth/refresh and
// the health probes are public. PUT is not part of the API surface and
// answers 405 on every resource, as does any mutating verb on /changes.
func NewRouter(
	h Handlers,
	validator tokenValidator,
	corsCfg config.CORSConfig,
	logger *slog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	common := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(corsCfg),
	)
	authed := middleware.Chain(middleware.Auth(validator))

	public := func(pattern string, handler http.HandlerFunc) {
		mux.Handle(pattern, common(handler))
	}
	protected := func(pattern string, handler http.HandlerFunc) {
		mux.Handle(pattern, common(authed(handler)))
	}

	public("POST /auth/register", h.Auth.Register)
	public("POST /auth/login", h.Auth.Login)
	public("POST /auth/refresh", h.Auth.Refresh)
	protected("POST /auth/logout", h.Auth.Logout)
	protected("GET /me", h.Auth.Me)

	public("GET /healthz", h.Health.Live)
	public("GET /readyz", h.Health.Ready)

	protected("POST /projects", h.Projects.Create)
	protected("GET /projects", h.Projects.List)
	protected("GET /projects/{id}", h.Projects.Get)
	protected("PATCH /projects/{id}", h.Projects.Update)
	protected("DELETE /projects/{id}", h.Projects.Delete)
	protected("PUT /projects", methodNotAllowed)
	protected("PUT /projects/{id}", methodNotAllowed)

	protected("POST /tags", h.Tags.Create)
	protected("GET /tags", h.Tags.List)
	protected("GET /tags/{id}", h.Tags.Get)
	protected("PATCH /tags/{id}", h.Tags.Update)
	protected("DELETE /tags/{id}", h.Tags.Delete)
	protected("PUT /tags", methodNotAllowed)
	protected("PUT /tags/{id}", methodNotAllowed)

	protected("POST /tasks", h.Tasks.Create)
	protected("GET /tasks", h.Tasks.List)
	protected("GET /tasks/{id}", h.Tasks.Get)
	protected("PATCH /tasks/{id}", h.Tasks.Update)
	protected("DELETE /tasks/{id}", h.Tasks.Delete)
	protected("PUT /tasks", methodNotAllowed)
	protected("PUT /tasks/{id}", methodNotAllowed)

	// The mux prefers the literal /shared/tasks segment over {id}.
	protected("POST /shared", h.Shared.Create)
	protected("GET /shared", h.Shared.List)
	protected("GET /shared/tasks", h.Shared.Tasks)
	protected("GET /shared/{id}", h.Shared.Get)
	protected("PATCH /shared/{id}", h.Shared.Update)
	protected("DELETE /shared/{id}", h.Shared.Delete)
	protected("PUT /shared", methodNotAllowed)
	protected("PUT /shared/{id}", methodNotAllowed)

	// The change ledger is append-only and written exclusively by mutations
	// on other resources. Every mutating verb on it answers 405.
	protected("GET /changes", h.Changes.List)
	protected("GET /changes/last_id", h.Changes.LastID)
	protected("GET /changes/{change_id}", h.Changes.Get)
	for _, method := range []string{"POST", "PUT", "PATCH", "DELETE"} {
		protected(method+" /changes", methodNotAllowed)
		protected(method+" /changes/last_id", methodNotAllowed)
		protected(method+" /changes/{change_id}", methodNotAllowed)
	}

	return mux
}
