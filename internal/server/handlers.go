package server

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ydemirbas/gradelens/internal/extract"
	"github.com/ydemirbas/gradelens/internal/web"
)

// maxFileSize caps each uploaded file. The check is strictly greater-than; a
// file of exactly this size is accepted.
const maxFileSize = 5 * 1024 * 1024

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleIndex(c echo.Context) error {
	page, err := web.IndexPage()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "index page unavailable")
	}
	return c.HTMLBlob(http.StatusOK, page)
}

func (s *Server) handleAnalyze(c echo.Context) error {
	rubric, err := formFileBytes(c, "rubric")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "Missing rubric file."})
	}
	if len(rubric.content) > maxFileSize {
		return c.JSON(http.StatusBadRequest, errorBody{
			Error: "Rubric file too large. Please keep files under 5MB.",
		})
	}

	assignment, err := formFileBytes(c, "assignment")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "Missing assignment file."})
	}
	if len(assignment.content) > maxFileSize {
		return c.JSON(http.StatusBadRequest, errorBody{
			Error: "Assignment file too large. Please keep files under 5MB.",
		})
	}

	s.log.Debug("analyzing rubric=%s assignment=%s", rubric.name, assignment.name)

	rubricText, err := extract.Text(rubric.name, rubric.content)
	if err != nil {
		return analysisError(c, err)
	}
	assignmentText, err := extract.Text(assignment.name, assignment.content)
	if err != nil {
		return analysisError(c, err)
	}

	result, err := s.grader.Grade(rubricText, assignmentText)
	if err != nil {
		return analysisError(c, err)
	}

	s.log.Info("graded %s: score=%.1f", assignment.name, result.Score)
	return c.JSON(http.StatusOK, result)
}

func analysisError(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, errorBody{
		Error: fmt.Sprintf("Error during analysis: %v", err),
	})
}

type uploadedFile struct {
	name    string
	content []byte
}

func formFileBytes(c echo.Context, field string) (uploadedFile, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return uploadedFile{}, err
	}
	content, err := readMultipartFile(header)
	if err != nil {
		return uploadedFile{}, err
	}
	return uploadedFile{name: header.Filename, content: content}, nil
}

func readMultipartFile(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
