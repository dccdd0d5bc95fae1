package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kwen-qodo/screenshot-to-code/internal/upload"
)

func (s *Server) handleUpload(c echo.Context) error {
	header, err := c.FormFile("file")
	if err != nil {
		return requestError{Status: http.StatusBadRequest, Message: "multipart field \"file\" is required"}
	}

	info, err := s.uploads.Save(header)
	if err != nil {
		return toUploadHTTPError(err)
	}
	return c.JSON(http.StatusCreated, info)
}

func (s *Server) handleGetFile(c echo.Context) error {
	path, err := s.uploads.Path(c.Param("name"))
	if err != nil {
		return toUploadHTTPError(err)
	}
	return c.File(path)
}

func (s *Server) handleDeleteFile(c echo.Context) error {
	if err := s.uploads.Delete(c.Param("name")); err != nil {
		return toUploadHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

func toUploadHTTPError(err error) error {
	switch {
	case errors.Is(err, upload.ErrNotFound):
		return requestError{Status: http.StatusNotFound, Message: "file not found"}
	case errors.Is(err, upload.ErrUnsupportedType):
		return requestError{Status: http.StatusBadRequest, Message: err.Error()}
	case errors.Is(err, upload.ErrTooLarge):
		return requestError{Status: http.StatusRequestEntityTooLarge, Message: err.Error()}
	default:
		return err
	}
}
