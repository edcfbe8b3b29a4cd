package model

import (
	"errors"
	"fmt"
	"os"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/Brownie44l1/skintone-api/internal/config"
	"github.com/Brownie44l1/skintone-api/internal/imageprep"
)

// Server runs the skin-tone classifier. Its session is bound to a single
// pair of tensors, so Predict serializes callers.
type Server struct {
	mu           sync.Mutex
	session      *ort.AdvancedSession
	inputTensor  *ort.Tensor[float32]
	outputTensor *ort.Tensor[float32]
	labels       []string
}

// NewServer loads the ONNX artifact described by cfg. labels must be in the
// model's output index order.
func NewServer(cfg config.ModelConfig, labels []string) (*Server, error) {
	if len(labels) == 0 {
		return nil, errors.New("no class labels configured")
	}
	if _, err := os.Stat(cfg.Path); err != nil {
		return nil, fmt.Errorf("model artifact unavailable: %w", err)
	}

	if cfg.LibraryPath != "" {
		ort.SetSharedLibraryPath(cfg.LibraryPath)
	}
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("failed to initialize ONNX environment: %w", err)
	}

	inputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(imageprep.Shape()...))
	if err != nil {
		ort.DestroyEnvironment()
		return nil, fmt.Errorf("failed to create input tensor: %w", err)
	}

	outputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(len(labels))))
	if err != nil {
		inputTensor.Destroy()
		ort.DestroyEnvironment()
		return nil, fmt.Errorf("failed to create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(cfg.Path,
		[]string{cfg.InputName}, []string{cfg.OutputName},
		[]ort.ArbitraryTensor{inputTensor}, []ort.ArbitraryTensor{outputTensor},
		nil)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		ort.DestroyEnvironment()
		return nil, fmt.Errorf("failed to create ONNX session: %w", err)
	}

	return &Server{
		session:      session,
		inputTensor:  inputTensor,
		outputTensor: outputTensor,
		labels:       append([]string(nil), labels...),
	}, nil
}

// Predict classifies one preprocessed image.
func (s *Server) Predict(input *imageprep.Tensor) (*Prediction, error) {
	if input == nil || len(input.Data) != imageprep.Len {
		return nil, fmt.Errorf("expected %d input values", imageprep.Len)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	copy(s.inputTensor.GetData(), input.Data)

	if err := s.session.Run(); err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}

	return Decide(s.labels, s.outputTensor.GetData())
}

func (s *Server) Labels() []string {
	return append([]string(nil), s.labels...)
}

func (s *Server) Close() {
	if s.inputTensor != nil {
		s.inputTensor.Destroy()
	}
	if s.outputTensor != nil {
		s.outputTensor.Destroy()
	}
	if s.session != nil {
		s.session.Destroy()
	}
	ort.DestroyEnvironment()
}
