package router

import (
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"
	handler "github.com/thumbgallery/handler/v1/thumbnails"
	"github.com/thumbgallery/model"
)

const defaultThumbName = "thumb"

// New returns new router serving the gallery, results api and thumbnail
// files from thumbDir.
func New(repo model.ThumbnailsRepository, thumbDir string) *mux.Router {
	router := mux.NewRouter()
	prefix := ThumbPrefix(thumbDir)
	svc := handler.NewService(repo, prefix)

	router.HandleFunc("/", svc.Page).Methods("GET")

	apiV1 := router.PathPrefix("/api/v1").Subrouter()
	apiV1.HandleFunc("/thumbnails", svc.All).Methods("GET")
	apiV1.HandleFunc("/thumbnails/failed", svc.Failed).Methods("GET")

	router.PathPrefix(prefix).Handler(
		http.StripPrefix(prefix, http.FileServer(http.Dir(thumbDir))),
	).Methods("GET")

	return router
}

// ThumbPrefix returns url prefix under which files of thumbDir are served.
// Only the last element of thumbDir is used, so relative dirs like ../thumb
// still give a prefix browsers won't rewrite.
func ThumbPrefix(thumbDir string) string {
	name := filepath.Base(filepath.Clean(thumbDir))
	switch name {
	case ".", "..", string(filepath.Separator):
		name = defaultThumbName
	}
	return "/" + name + "/"
}
