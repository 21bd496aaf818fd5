package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/marcus-hale/ticket-stubs-tracker/internal/llm"
)

// ExtractFields implements llm.FieldExtractor over chat/completions. When the
// transcript confidence is low and the original photo is attachable, the
// request goes out as a vision call with the image inlined as a data URL.
func (c *Client) ExtractFields(ctx context.Context, req llm.ExtractRequest) (llm.TicketFields, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	attach, dataURL, mimeType := llm.ShouldAttachImage(req)

	c.logger.Info("vision.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(req.TranscriptText),
		"has_file_path", req.FilePath != "",
		"prep_confidence", req.PrepConfidence,
		"image_attached", attach,
		"image_mime", mimeType,
	)

	schema := llm.BuildTicketJSONSchema()
	sys := llm.BuildSystemPrompt(req)
	user := llm.BuildUserPrompt(req, attach)

	var userContent any = user + "\n\nReturn ONLY JSON that matches the provided schema."
	if attach {
		userContent = []map[string]any{
			{"type": "text", "text": user + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"type": "image_url", "image_url": map[string]any{"url": dataURL}},
		}
	}

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": sys},
			{"role": "user", "content": userContent},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
	raw, status, httpErr := llm.SendJSON(ctx, c.http, endpoint, body, headers, c.logger)
	if httpErr != nil {
		c.logger.Error("vision.extract.http_error",
			"req_id", rid, "status", status, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.TicketFields{}, nil, httpErr
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.logger.Error("vision.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.TicketFields{}, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.logger.Error("vision.extract.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.TicketFields{}, raw, fmt.Errorf("no choices in openai response")
	}
	rawContent := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	// Validate strictly first.
	if err := llm.ValidateJSONAgainstSchema(schema, rawContent); err != nil {
		if !c.cfg.LenientOptional {
			c.logger.Error("vision.extract.schema_validation_failed",
				"req_id", rid, "error", err, "content", string(rawContent),
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return llm.TicketFields{}, rawContent, fmt.Errorf("schema validation failed: %w", err)
		}

		// Lenient path: drop/normalize offenders and re-validate.
		cleaned, dropped, sErr := llm.SanitizeFields(rawContent)
		if sErr != nil {
			c.logger.Error("vision.extract.sanitize_failed",
				"req_id", rid, "error", sErr,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return llm.TicketFields{}, rawContent, fmt.Errorf("sanitize failed: %w", sErr)
		}
		if vErr := llm.ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
			c.logger.Error("vision.extract.schema_validation_failed",
				"req_id", rid, "error", vErr, "content", string(cleaned),
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return llm.TicketFields{}, cleaned, fmt.Errorf("schema validation failed: %w", vErr)
		}
		c.logger.Warn("vision.extract.lenient_sanitize_applied",
			"req_id", rid, "dropped", dropped,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		rawContent = cleaned
	}

	var out llm.TicketFields
	if err := json.Unmarshal(rawContent, &out); err != nil {
		c.logger.Error("vision.extract.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.TicketFields{}, rawContent, fmt.Errorf("unmarshal fields: %w", err)
	}

	c.logger.Info("vision.extract.ok",
		"req_id", rid,
		"title", out.MovieTitle,
		"date", out.ShowDate,
		"price", out.Price,
		"confidence", out.ModelConfidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, rawContent, nil
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
