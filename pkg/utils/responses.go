package utils

import (
	"net/http"
)

// SeeOther issues the post-form redirect every mutation handler finishes with.
func SeeOther(w http.ResponseWriter, r *http.Request, location string) {
	http.Redirect(w, r, location, http.StatusSeeOther)
}
