package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

const defaultImageModel = "gemini-2.5-flash-image"

// maxGeneratedPhotos caps candidates requested from the provider per call.
const maxGeneratedPhotos = 4

// ImageService proxies photo generation to the Google Generative Language
// API and stores the returned images in S3.
type ImageService struct {
	APIKey     string
	Model      string
	Media      *S3Service
	HTTPClient *http.Client
}

func NewImageService(apiKey, model string, media *S3Service) *ImageService {
	if model == "" {
		model = defaultImageModel
	}
	return &ImageService{
		APIKey:     apiKey,
		Model:      model,
		Media:      media,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type generatePart struct {
	Text       string          `json:"text,omitempty"`
	InlineData *generateInline `json:"inline_data,omitempty"`
}

type generateInline struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateRequest struct {
	Contents []struct {
		Role  string         `json:"role"`
		Parts []generatePart `json:"parts"`
	} `json:"contents"`
	GenerationConfig struct {
		CandidateCount int `json:"candidateCount"`
	} `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				InlineData *generateInline `json:"inlineData"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GeneratePhotos asks the model for up to num refined portrait images, using
// an optional input image, and returns the S3 URLs of the stored results.
func (is *ImageService) GeneratePhotos(ctx context.Context, prompt string, inputImage []byte, inputMimeType string, num int) ([]string, error) {
	if is.APIKey == "" {
		return nil, fmt.Errorf("missing GOOGLE_API_KEY")
	}
	if num <= 0 || num > maxGeneratedPhotos {
		num = maxGeneratedPhotos
	}
	if prompt == "" {
		prompt = "Refine this photo into a date-ready portrait."
	}

	parts := []generatePart{{Text: prompt}}
	if len(inputImage) > 0 {
		if inputMimeType == "" {
			inputMimeType = "image/jpeg"
		}
		parts = append(parts, generatePart{InlineData: &generateInline{
			MimeType: inputMimeType,
			Data:     base64.StdEncoding.EncodeToString(inputImage),
		}})
	}

	var request generateRequest
	request.Contents = append(request.Contents, struct {
		Role  string         `json:"role"`
		Parts []generatePart `json:"parts"`
	}{Role: "user", Parts: parts})
	request.GenerationConfig.CandidateCount = num

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		url.PathEscape(is.Model), url.QueryEscape(is.APIKey),
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := is.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image generation request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image generation returned status %d", resp.StatusCode)
	}

	var response generateResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse generation response: %w", err)
	}

	var urls []string
	for _, candidate := range response.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.InlineData == nil || part.InlineData.Data == "" {
				continue
			}
			image, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil {
				log.Printf("Failed to decode generated image: %v", err)
				continue
			}
			mimeType := part.InlineData.MimeType
			if mimeType == "" {
				mimeType = "image/png"
			}
			assetURL, err := is.Media.UploadAsset(ctx, image, mimeType)
			if err != nil {
				log.Printf("Failed to store generated image: %v", err)
				continue
			}
			urls = append(urls, assetURL)
		}
	}

	if len(urls) > num {
		urls = urls[:num]
	}
	return urls, nil
}
