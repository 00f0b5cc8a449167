package handler

import (
	"io"
	"mime/multipart"
	"net/http"

	"artdesk.app/api/internal/http/dto"
	"artdesk.app/api/internal/model"
	"artdesk.app/api/internal/service"
	"github.com/gin-gonic/gin"
)

// Uploads beyond this are rejected before reaching storage.
const maxArtUploadBytes = 64 << 20

type ArtHandler struct {
	artService service.ArtService
}

func NewArtHandler(artService service.ArtService) *ArtHandler {
	return &ArtHandler{artService: artService}
}

// Create expects a multipart form with a title field and a file part.
func (h *ArtHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	taskID, ok := pathID(c, "taskID")
	if !ok {
		return
	}

	title := c.PostForm("title")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	data, filename, ok := readUpload(c, fileHeader)
	if !ok {
		return
	}

	art, err := h.artService.Create(ctx, CurrentUser(c).ID, taskID, title, filename, data)
	if err != nil {
		respondServiceError(c, err, "failed to create art")
		return
	}

	c.JSON(http.StatusCreated, dto.ToArtResponse(art))
}

func (h *ArtHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	artID, ok := pathID(c, "artID")
	if !ok {
		return
	}

	art, err := h.artService.Get(ctx, CurrentUser(c).ID, artID)
	if err != nil {
		respondServiceError(c, err, "failed to get art")
		return
	}

	c.JSON(http.StatusOK, dto.ToArtResponse(art))
}

func (h *ArtHandler) ListByTask(c *gin.Context) {
	ctx := c.Request.Context()

	taskID, ok := pathID(c, "taskID")
	if !ok {
		return
	}

	arts, err := h.artService.ListByTask(ctx, CurrentUser(c).ID, taskID)
	if err != nil {
		respondServiceError(c, err, "failed to list arts")
		return
	}

	resp := dto.ListArtsResponse{Arts: make([]dto.ArtResponse, len(arts))}
	for i := range arts {
		resp.Arts[i] = *dto.ToArtResponse(&arts[i])
	}

	c.JSON(http.StatusOK, resp)
}

// Update takes the same multipart form as Create; the file part is
// optional and replaces the stored file when present.
func (h *ArtHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	artID, ok := pathID(c, "artID")
	if !ok {
		return
	}

	title := c.PostForm("title")

	var (
		data     []byte
		filename string
	)
	if fileHeader, err := c.FormFile("file"); err == nil {
		data, filename, ok = readUpload(c, fileHeader)
		if !ok {
			return
		}
	}

	art, err := h.artService.Update(ctx, CurrentUser(c).ID, artID, title, filename, data)
	if err != nil {
		respondServiceError(c, err, "failed to update art")
		return
	}

	c.JSON(http.StatusOK, dto.ToArtResponse(art))
}

func (h *ArtHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	artID, ok := pathID(c, "artID")
	if !ok {
		return
	}

	if err := h.artService.Delete(ctx, CurrentUser(c).ID, artID); err != nil {
		respondServiceError(c, err, "failed to delete art")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ArtHandler) Review(c *gin.Context) {
	ctx := c.Request.Context()

	artID, ok := pathID(c, "artID")
	if !ok {
		return
	}

	var req dto.ReviewArtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	art, err := h.artService.Review(ctx, CurrentUser(c).ID, artID, model.ArtStatus(req.Status), req.Feedback)
	if err != nil {
		respondServiceError(c, err, "failed to review art")
		return
	}

	c.JSON(http.StatusOK, dto.ToArtResponse(art))
}

func (h *ArtHandler) AddComment(c *gin.Context) {
	ctx := c.Request.Context()

	artID, ok := pathID(c, "artID")
	if !ok {
		return
	}

	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.artService.AddComment(ctx, CurrentUser(c).ID, artID, req.X, req.Y, req.Comment)
	if err != nil {
		respondServiceError(c, err, "failed to add comment")
		return
	}

	c.JSON(http.StatusCreated, dto.ToArtCommentResponse(*comment))
}

func (h *ArtHandler) ListComments(c *gin.Context) {
	ctx := c.Request.Context()

	artID, ok := pathID(c, "artID")
	if !ok {
		return
	}

	comments, err := h.artService.ListComments(ctx, CurrentUser(c).ID, artID)
	if err != nil {
		respondServiceError(c, err, "failed to list comments")
		return
	}

	resp := dto.ListArtCommentsResponse{Comments: make([]dto.ArtCommentResponse, len(comments))}
	for i, cm := range comments {
		resp.Comments[i] = dto.ToArtCommentResponse(cm)
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ArtHandler) ListFeedback(c *gin.Context) {
	ctx := c.Request.Context()

	artID, ok := pathID(c, "artID")
	if !ok {
		return
	}

	feedback, err := h.artService.ListFeedback(ctx, CurrentUser(c).ID, artID)
	if err != nil {
		respondServiceError(c, err, "failed to list feedback")
		return
	}

	resp := dto.ListArtFeedbackResponse{Feedback: make([]dto.ArtFeedbackResponse, len(feedback))}
	for i, fb := range feedback {
		resp.Feedback[i] = dto.ToArtFeedbackResponse(fb)
	}

	c.JSON(http.StatusOK, resp)
}

func readUpload(c *gin.Context, fileHeader *multipart.FileHeader) ([]byte, string, bool) {
	if fileHeader.Size > maxArtUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file exceeds the upload limit"})
		return nil, "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return nil, "", false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxArtUploadBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return nil, "", false
	}

	return data, fileHeader.Filename, true
}
