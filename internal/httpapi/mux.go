package httpapi

import (
	"database/sql"
	"net/http"
)

func NewMux(db *sql.DB, counter ObservationCounter) *http.ServeMux {
	mux := http.NewServeMux()
	registerHealthcheck(mux, db, counter)
	return mux
}
