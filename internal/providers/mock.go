package providers

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strings"
)

// MockBackend produces a deterministic classification response derived from
// the prompt hash, so local runs and tests need no API keys.
type MockBackend struct{}

func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

var mockCodes = []string{
	"1702", "1705", "1707", "1710", "1712",
	"2604", "2611", "2613", "2208", "2741",
	"2718", "3104", "1311", "2303", "1408",
}

var mockWeights = []int{30, 25, 15, 12, 10, 8}

func (m *MockBackend) Complete(ctx context.Context, req CompletionRequest) (string, ProviderInfo, error) {
	_ = ctx
	h := sha256.Sum256([]byte(req.Prompt))
	offset := int(binary.BigEndian.Uint32(h[:4]))

	var b strings.Builder
	b.WriteString("[")
	for i, w := range mockWeights {
		if i > 0 {
			b.WriteString(", ")
		}
		code := mockCodes[(offset+i)%len(mockCodes)]
		fmt.Fprintf(&b, `{"code": %s, "percentage": %d}`, code, w)
	}
	b.WriteString("]")
	return b.String(), ProviderInfo{Name: "mock", Model: "mock-classifier-v1"}, nil
}
