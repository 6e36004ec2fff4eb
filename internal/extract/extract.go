// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package extract pulls plain text out of uploaded writing samples.
package extract

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/encoding/charmap"

	"draftdeck/internal/models"
)

// Text extracts plain text from an upload body according to its file
// type. The result may be empty for a scanned or image-only PDF; the
// caller decides whether an empty extract is acceptable.
func Text(fileType models.FileType, data []byte) (string, error) {
	switch fileType {
	case models.FileTypePdf:
		return fromPDF(data)
	case models.FileTypeTxt, models.FileTypeText:
		return fromPlainText(data), nil
	default:
		return "", fmt.Errorf("extract: unsupported file type %q", fileType)
	}
}

// fromPlainText decodes a text file as UTF-8, falling back to Latin-1
// when the bytes are not valid UTF-8. Latin-1 maps every byte, so the
// fallback cannot fail.
func fromPlainText(data []byte) string {
	if utf8.Valid(data) {
		return strings.TrimSpace(string(data))
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return strings.TrimSpace(string(data))
	}
	return strings.TrimSpace(string(decoded))
}

// fromPDF walks the document page by page. A page that fails to yield
// text is skipped rather than failing the whole document; corrupt
// structure at the document level is still an error.
func fromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("extract pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(text)
	}

	return strings.TrimSpace(b.String()), nil
}
