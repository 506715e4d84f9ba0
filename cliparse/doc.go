/*
Package cliparse handles configuration from CLI flags and environment
variables. Flags win over env vars; everything has a workable default
except a postgres connection string.

	-p / PORT            server port (default 8080)
	-d / DATABASE_URL    sqlite file path or postgres URL (default reviews.db)
	-t / DATABASE_TYPE   sqlite or postgres (default sqlite)
*/
package cliparse
