package server

import (
	"net/http"

	"bidhub/internal/domain/entity"
	"bidhub/pkg/httpx/reply"
)

type GuideServer struct {
	guide entity.Guide
}

func NewGuideServer(guide entity.Guide) GuideServer {
	return GuideServer{guide: guide}
}

func (s GuideServer) getV1HowItWorks(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, newRESTGuide(s.guide))

	return nil
}
