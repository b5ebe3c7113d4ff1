package server

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xtraact/relay/internal/history"
	"github.com/xtraact/relay/internal/model"
)

// processResponse is the JSON payload of the process endpoint, success or
// failure.
type processResponse struct {
	Success     bool               `json:"success"`
	Type        string             `json:"type,omitempty"`
	Title       string             `json:"title,omitempty"`
	DownloadURL string             `json:"download_url,omitempty"`
	Images      []model.ImageAsset `json:"images,omitempty"`
	Error       string             `json:"error,omitempty"`
}

// probeResponse is the JSON payload of the metadata probe endpoint. Heights
// let the client offer only quality ceilings the source actually has.
type probeResponse struct {
	Success  bool   `json:"success"`
	Title    string `json:"title,omitempty"`
	Platform string `json:"platform,omitempty"`
	Shape    string `json:"shape,omitempty"`
	Heights  []int  `json:"heights,omitempty"`
	Error    string `json:"error,omitempty"`
}

// handleProcess runs one orchestrated download and answers with either a
// one-time download link or the carousel's asset URLs.
func (s *Server) handleProcess(c *gin.Context) {
	var req model.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, processResponse{Success: false, Error: "Invalid request body."})
		return
	}

	result, err := s.orchestrator.Execute(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusFor(err), processResponse{Success: false, Error: model.UserMessage(err)})
		return
	}

	switch result.Type {
	case model.ResultTypeImages:
		c.JSON(http.StatusOK, processResponse{
			Success: true,
			Type:    string(model.ResultTypeImages),
			Title:   result.Title,
			Images:  result.Images,
		})
	default:
		s.recordHistory(req.URL, result)
		c.JSON(http.StatusOK, processResponse{
			Success:     true,
			Type:        string(model.ResultTypeMedia),
			Title:       result.Title,
			DownloadURL: "/download_file/" + url.PathEscape(result.ServingKey),
		})
	}
}

// handleDownloadFile streams a staged artifact as an attachment exactly
// once. The artifact is deleted afterwards even when the transfer fails
// partway.
func (s *Server) handleDownloadFile(c *gin.Context) {
	filename := c.Param("filename")
	path, release, err := s.artifacts.Consume(filename)
	if err != nil {
		c.JSON(http.StatusNotFound, processResponse{Success: false, Error: model.UserMessage(err)})
		return
	}
	defer release()

	c.FileAttachment(path, filename)
}

// handleProbe classifies a URL without downloading anything, for clients
// that want title and shape before committing.
func (s *Server) handleProbe(c *gin.Context) {
	target := c.Query("url")
	if target == "" {
		c.JSON(http.StatusBadRequest, probeResponse{Success: false, Error: "No URL provided."})
		return
	}

	intent, err := s.classifier.Classify(c.Request.Context(), target)
	if err != nil {
		c.JSON(statusFor(err), probeResponse{Success: false, Error: model.UserMessage(err)})
		return
	}

	c.JSON(http.StatusOK, probeResponse{
		Success:  true,
		Title:    intent.Title,
		Platform: intent.Platform.String(),
		Shape:    string(intent.Shape),
		Heights:  intent.Heights,
	})
}

// handleHistory lists completed downloads, newest first.
func (s *Server) handleHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"history": s.history.All(),
	})
}

// handleHealth reports liveness.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
	})
}

// recordHistory appends a completed media download, best-effort.
func (s *Server) recordHistory(sourceURL string, result *model.OrchestrationResult) {
	if s.history == nil {
		return
	}
	_ = s.history.Add(history.Record{
		Title:    result.Title,
		Uploader: result.Uploader,
		URL:      sourceURL,
	})
}

// statusFor maps the error taxonomy to HTTP status codes.
func statusFor(err error) int {
	switch model.KindOf(err) {
	case model.ErrorKindInput:
		return http.StatusBadRequest
	case model.ErrorKindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
