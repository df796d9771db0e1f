package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"

	"biblioteca-api/internal/apperrors"
)

var json = jsoniter.ConfigFastest

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, apperrors.InvalidData("invalid " + name + ", expected a numeric id")
	}
	return id, nil
}
