package vision

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/vertexai/genai"
	"golang.org/x/sync/errgroup"
)

// --- OCR model prompts ---

const ocrSystemPrompt = "You are a handwriting and document transcription specialist. Your task is to read photographed note pages and transcribe their full text content. Accuracy and completeness are of utmost importance."

const ocrUserPrompt = `You will be provided with one or more photographed pages of handwritten or printed sermon notes.

Follow these instructions:

1. The pages are supplied in upload order, which is not necessarily reading order. Determine the logical reading order yourself from page numbers, sentence continuity, and layout before transcribing.
2. Transcribe all text content from every page into a single continuous text.
3. Preserve line breaks where they carry meaning (list items, verse references, headings).
4. Do not describe the images, do not add commentary, and do not invent content for illegible passages; mark those as [illegible].

Return ONLY the transcribed text.`

// --- Formatter model prompts ---

const formatterSystemPrompt = "You are an expert Markdown editor. Your task is to reformat raw transcribed sermon notes into a clean, well-structured Markdown document without losing any content."

const formatterUserPrompt = `Reformat the following transcribed notes into Markdown:

1. Use headings for sermon titles, scripture passages, and major sections.
2. Use bullet lists for enumerations and sub-points.
3. Use bold emphasis for key phrases and verse references.
4. Preserve all content; reorganize, do not summarize.

Return ONLY the final Markdown content. Do not surround the output with backtick fences.`

const maxConcurrentFetches = 4

// Client holds the pre-configured generative models for OCR and markdown
// formatting, plus the HTTP client used to pull image bytes from signed
// storage URLs.
type Client struct {
	ocrModel       *genai.GenerativeModel
	formatterModel *genai.GenerativeModel
	baseClient     *genai.Client
	httpClient     *http.Client
}

func NewClient(ctx context.Context, projectID, region, modelName string) (*Client, error) {
	if projectID == "" || region == "" {
		return nil, fmt.Errorf("vision.NewClient: projectID and region cannot be empty")
	}

	baseClient, err := genai.NewClient(ctx, projectID, region)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	ocrModel := baseClient.GenerativeModel(modelName)
	ocrModel.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(ocrSystemPrompt)},
	}
	ocrModel.GenerationConfig = genai.GenerationConfig{
		Temperature: genai.Ptr[float32](0.0),
	}

	formatterModel := baseClient.GenerativeModel(modelName)
	formatterModel.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(formatterSystemPrompt)},
	}
	formatterModel.GenerationConfig = genai.GenerationConfig{
		Temperature: genai.Ptr[float32](0.2),
	}

	return &Client{
		ocrModel:       ocrModel,
		formatterModel: formatterModel,
		baseClient:     baseClient,
		httpClient:     &http.Client{Timeout: 60 * time.Second},
	}, nil
}

func (c *Client) Close() error {
	if c.baseClient != nil {
		return c.baseClient.Close()
	}
	return nil
}

// ExtractText submits all images in one request and returns the combined
// transcription. An empty response from the model is returned as an empty
// string, not an error; callers decide whether empty output matters.
func (c *Client) ExtractText(ctx context.Context, imageURLs []string) (string, error) {
	if len(imageURLs) == 0 {
		return "", fmt.Errorf("text extraction failed: no images provided")
	}

	blobs, err := c.fetchImages(ctx, imageURLs)
	if err != nil {
		return "", fmt.Errorf("text extraction failed: %w", err)
	}

	parts := make([]genai.Part, 0, len(blobs)+1)
	for _, blob := range blobs {
		parts = append(parts, blob)
	}
	parts = append(parts, genai.Text(ocrUserPrompt))

	resp, err := c.ocrModel.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("text extraction failed: %w", err)
	}

	return extractText(resp), nil
}

// FormatMarkdown reformats raw transcribed text into structured markdown.
func (c *Client) FormatMarkdown(ctx context.Context, rawText string) (string, error) {
	resp, err := c.formatterModel.GenerateContent(ctx,
		genai.Text(formatterUserPrompt),
		genai.Text(rawText),
	)
	if err != nil {
		return "", fmt.Errorf("markdown formatting failed: %w", err)
	}

	return stripFence(extractText(resp)), nil
}

// fetchImages pulls every signed URL concurrently, preserving input order.
func (c *Client) fetchImages(ctx context.Context, imageURLs []string) ([]genai.Blob, error) {
	blobs := make([]genai.Blob, len(imageURLs))

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(maxConcurrentFetches)

	for i, imageURL := range imageURLs {
		eg.Go(func() error {
			req, err := http.NewRequestWithContext(gctx, http.MethodGet, imageURL, nil)
			if err != nil {
				return fmt.Errorf("image %d: %w", i, err)
			}

			resp, err := c.httpClient.Do(req)
			if err != nil {
				return fmt.Errorf("image %d: %w", i, err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("image %d: unexpected status %d", i, resp.StatusCode)
			}

			data, err := io.ReadAll(resp.Body)
			if err != nil {
				return fmt.Errorf("image %d: %w", i, err)
			}

			mimeType := resp.Header.Get("Content-Type")
			if mimeType == "" {
				mimeType = "image/jpeg"
			}

			blobs[i] = genai.Blob{MIMEType: mimeType, Data: data}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return blobs, nil
}

// extractText concatenates every text part of the first candidate. A nil or
// empty response yields "".
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return strings.TrimSpace(sb.String())
}

// stripFence removes a wrapping code fence the model was told not to emit
// but occasionally emits anyway.
func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}

	trimmed := strings.TrimPrefix(s, "```markdown")
	trimmed = strings.TrimPrefix(trimmed, "```md")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
