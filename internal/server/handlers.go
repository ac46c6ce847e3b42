package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/tokenorder/internal/detection"
	"github.com/ironsheep/tokenorder/internal/imaging"
	"github.com/ironsheep/tokenorder/internal/menu"
	"github.com/ironsheep/tokenorder/internal/order"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "order_recognize").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		s.logger.Warn("tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "order_menu":
		return s.handleOrderMenu()
	case "order_detect_regions":
		return s.handleOrderDetectRegions(ctx, args)
	case "order_recognize":
		return s.handleOrderRecognize(ctx, args)
	case "order_annotate":
		return s.handleOrderAnnotate(ctx, args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

type pathArgs struct {
	Path string `json:"path"`
}

func (a pathArgs) validate() error {
	if a.Path == "" {
		return errors.New("path is required")
	}
	return nil
}

func decodeArgs(args json.RawMessage, v interface{ validate() error }) error {
	if len(args) > 0 {
		if err := json.Unmarshal(args, v); err != nil {
			return err
		}
	}
	return v.validate()
}

// === Image Handlers ===

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

// === Order Handlers ===

// MenuResult is the order_menu response.
type MenuResult struct {
	Items []menu.Item `json:"items"`
}

func (s *Server) handleOrderMenu() (interface{}, error) {
	return &MenuResult{Items: s.catalog.Items()}, nil
}

// DetectRegionsResult is the order_detect_regions response.
type DetectRegionsResult struct {
	Count   int                `json:"count"`
	Regions []detection.Region `json:"regions"`
}

func (s *Server) handleOrderDetectRegions(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	regions, err := s.detector.Detect(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("failed to detect regions: %w", err)
	}
	return &DetectRegionsResult{Count: len(regions), Regions: regions}, nil
}

type orderRecognizeArgs struct {
	pathArgs
	Confirm *string `json:"confirm,omitempty"`
}

// RecognizeResult is the order_recognize response.
type RecognizeResult struct {
	*order.Result

	// Transcript is the text a customer would have seen.
	Transcript string `json:"transcript"`
}

func (s *Server) handleOrderRecognize(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a orderRecognizeArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	var answer order.FixedAnswer
	if a.Confirm != nil {
		answer = order.FixedAnswer(*a.Confirm)
	}

	var transcript bytes.Buffer
	opts := []order.FlowOption{order.WithLogger(s.logger)}
	if s.metrics != nil {
		opts = append(opts, order.WithRecorder(s.metrics))
	}
	flow := order.NewFlow(s.catalog, &transcript, answer, opts...)

	res, err := flow.Process(ctx, s.regionDetector(), img)
	if err != nil {
		return nil, err
	}
	return &RecognizeResult{Result: res, Transcript: transcript.String()}, nil
}

type orderAnnotateArgs struct {
	pathArgs
	OutputPath string `json:"output_path,omitempty"`
}

// AnnotateResult is the order_annotate response. Exactly one of Image and
// OutputPath is set.
type AnnotateResult struct {
	Selections []order.Selection `json:"selections"`
	Image      string            `json:"image,omitempty"`
	MimeType   string            `json:"mime_type,omitempty"`
	OutputPath string            `json:"output_path,omitempty"`
}

func (s *Server) handleOrderAnnotate(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a orderAnnotateArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	observations, err := s.regionDetector().DetectRegions(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("failed to detect regions: %w", err)
	}
	o, _ := order.NewAssembler(s.catalog).Assemble(observations)
	annotated := imaging.Annotate(img, imaging.OrderLabels(o), s.annotate)

	result := &AnnotateResult{Selections: o.Selections()}
	if a.OutputPath != "" {
		if err := imaging.Save(annotated, a.OutputPath); err != nil {
			return nil, err
		}
		result.OutputPath = a.OutputPath
		return result, nil
	}

	encoded, err := imaging.EncodePNGBase64(annotated)
	if err != nil {
		return nil, err
	}
	result.Image = encoded
	result.MimeType = "image/png"
	return result, nil
}
