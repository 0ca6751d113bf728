package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth     = RouteApiV1 + "/auth"
	RouteRegister = RouteAuth + "/register"
	RouteLogin    = RouteAuth + "/login"

	// current user
	RouteProfile = RouteApiV1 + "/users/me"

	// files
	RouteFiles = RouteApiV1 + "/files"
	RouteFile  = RouteFiles + "/:file_id"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
