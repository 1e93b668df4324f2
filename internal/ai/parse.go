package ai

import (
	"encoding/json"
	"strings"

	"github.com/thoreinstein/claude2gemini/internal/analyzer"
	"github.com/thoreinstein/claude2gemini/internal/errors"
)

// StripFences removes a surrounding markdown code fence from a model reply.
func StripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	// Drop the opening fence line, including any language tag.
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = text[idx+1:]
	} else {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// decodeJSON decodes a model reply into out. If the stripped reply is not
// valid JSON, the span from the first '{' to the last '}' is tried.
func decodeJSON(text string, out any) error {
	cleaned := StripFences(text)
	err := json.Unmarshal([]byte(cleaned), out)
	if err == nil {
		return nil
	}

	start := strings.IndexByte(cleaned, '{')
	end := strings.LastIndexByte(cleaned, '}')
	if start >= 0 && end > start {
		if json.Unmarshal([]byte(cleaned[start:end+1]), out) == nil {
			return nil
		}
	}
	return errors.Mark(errors.Wrap(err, "decoding response"), ErrMalformedResponse)
}

// ParseAnalysis decodes a tree classification reply.
func ParseAnalysis(text string) (*analyzer.Analysis, error) {
	var analysis analyzer.Analysis
	if err := decodeJSON(text, &analysis); err != nil {
		return nil, err
	}
	if analysis.Agents == nil {
		analysis.Agents = []string{}
	}
	if analysis.Skills == nil {
		analysis.Skills = []analyzer.SkillEntry{}
	}
	return &analysis, nil
}

// ParseRefineResult decodes a refine reply. Empty content is rejected,
// extracted files without a name are dropped and unknown file types become
// assets.
func ParseRefineResult(text string) (*RefineResult, error) {
	var result RefineResult
	if err := decodeJSON(text, &result); err != nil {
		return nil, err
	}
	if strings.TrimSpace(result.Content) == "" {
		return nil, ErrEmptyContent
	}

	files := make([]ExtractedFile, 0, len(result.ExtractedFiles))
	for _, f := range result.ExtractedFiles {
		f.Name = strings.TrimSpace(f.Name)
		if f.Name == "" {
			continue
		}
		if f.Type != FileReference {
			f.Type = FileAsset
		}
		files = append(files, f)
	}
	result.ExtractedFiles = files
	return &result, nil
}
