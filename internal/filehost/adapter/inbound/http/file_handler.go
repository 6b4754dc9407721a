package http_handler

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	sdklogger "github.com/anthanhphan/gosdk/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/spaolacci/murmur3"
)

// rawFileName returns the request path exactly as sent, without fasthttp's decoding
// and normalization, so that sanitization happens in one place.
func rawFileName(c *fiber.Ctx) string {
	return strings.TrimPrefix(string(c.Request().URI().PathOriginal()), "/")
}

func (s *Server) handlePut(c *fiber.Ctx) error {
	downloadURL, err := s.files.Put(c.Context(), rawFileName(c), c.Body())
	if err != nil {
		return s.sendServiceError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(fiber.StatusCreated).SendString(downloadURL)
}

func (s *Server) handleDownload(c *fiber.Ctx) error {
	file, err := s.files.Get(c.Context(), rawFileName(c))
	if err != nil {
		return s.sendServiceError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	c.Set(fiber.HeaderContentDisposition, contentDisposition(file.Name))
	c.Set(fiber.HeaderLastModified, file.ModifiedAt.UTC().Format(http.TimeFormat))
	c.Set(fiber.HeaderETag, etag(file.Data))

	return c.Status(fiber.StatusOK).Send(file.Data)
}

func (s *Server) handleDelete(c *fiber.Ctx) error {
	if err := s.files.Delete(c.Context(), rawFileName(c)); err != nil {
		return s.sendServiceError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(fiber.StatusOK).SendString("Deleted")
}

func (s *Server) handleUpload(c *fiber.Ctx) error {
	contentType := c.Get(fiber.HeaderContentType)
	if !strings.HasPrefix(contentType, fiber.MIMEMultipartForm) {
		return s.sendJSONError(c, fiber.StatusUnsupportedMediaType, "Content-Type must be multipart/form-data")
	}

	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return s.sendJSONError(c, fiber.StatusBadRequest, "Invalid Content-Type")
	}
	boundary, ok := params["boundary"]
	if !ok || boundary == "" {
		return s.sendJSONError(c, fiber.StatusBadRequest, "Missing boundary in Content-Type")
	}

	fileName, data, err := firstFilePart(multipart.NewReader(bytes.NewReader(c.Body()), boundary))
	if err != nil {
		sdklogger.Warnw("Malformed multipart body", "error", err.Error())
		return s.sendJSONError(c, fiber.StatusBadRequest, fmt.Sprintf("Malformed multipart body: %v", err))
	}
	if data == nil {
		return s.sendJSONError(c, fiber.StatusBadRequest, "Missing file part")
	}

	// Form filenames arrive unencoded; escape them so Put's decoding restores them unchanged.
	downloadURL, err := s.files.Put(c.Context(), url.PathEscape(fileName), data)
	if err != nil {
		return s.sendServiceError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(fiber.StatusCreated).SendString("File uploaded successfully: " + downloadURL)
}

// firstFilePart returns the name and content of the first part carrying a filename.
// A nil data slice means the body held no file part.
func firstFilePart(mr *multipart.Reader) (string, []byte, error) {
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			return "", nil, nil
		}
		if err != nil {
			return "", nil, err
		}

		if part.FileName() == "" {
			_ = part.Close()
			continue
		}

		data, err := io.ReadAll(part)
		_ = part.Close()
		if err != nil {
			return "", nil, err
		}
		if data == nil {
			data = []byte{}
		}
		return part.FileName(), data, nil
	}
}

// contentDisposition builds an attachment header with an RFC 5987 encoded name.
func contentDisposition(name string) string {
	return "attachment; filename*=UTF-8''" + encodeRFC5987(name)
}

// encodeRFC5987 percent-encodes every byte outside attr-char.
func encodeRFC5987(s string) string {
	const upperhex = "0123456789ABCDEF"

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if isAttrChar(ch) {
			b.WriteByte(ch)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[ch>>4])
		b.WriteByte(upperhex[ch&0x0F])
	}
	return b.String()
}

func isAttrChar(ch byte) bool {
	switch {
	case 'a' <= ch && ch <= 'z', 'A' <= ch && ch <= 'Z', '0' <= ch && ch <= '9':
		return true
	}
	return strings.IndexByte("!#$&+-.^_`|~", ch) >= 0
}

func etag(data []byte) string {
	return `"` + strconv.FormatUint(murmur3.Sum64(data), 16) + `"`
}
