package api

import (
	"errors"
	"io"
	"log"
	"net/http"

	"job-recommender/internal/extract"
)

// ResumeUploadResponse returns the extracted plain text; the client feeds
// it back as resume_text on /recommend.
type ResumeUploadResponse struct {
	Filename string `json:"filename"`
	Chars    int    `json:"chars"`
	Text     string `json:"text"`
}

// ResumeUploadHandler extracts plain text from an uploaded resume
// @Summary Upload a resume
// @Description Upload a resume (PDF, DOCX, DOC, RTF, ODT or TXT) and get its plain text back
// @Tags resume
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume file"
// @Success 200 {object} ResumeUploadResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /resume/upload [post]
func (a *API) ResumeUploadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Max 10MB
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "file too large or invalid (max 10MB)", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "no file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !extract.SupportedExtension(header.Filename) {
		http.Error(w, "invalid file type (supported: PDF, DOCX, DOC, RTF, ODT, TXT)", http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "failed to read file", http.StatusInternalServerError)
		return
	}

	text, err := extract.Extract(header.Filename, data)
	if err != nil {
		if errors.Is(err, extract.ErrUnreadableDocument) {
			http.Error(w, "could not read the document, please re-upload", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.Printf("[API] Resume parsed: %s (%d bytes file, %d chars text)", header.Filename, len(data), len(text))

	writeJSON(w, http.StatusOK, ResumeUploadResponse{
		Filename: header.Filename,
		Chars:    len(text),
		Text:     text,
	})
}
