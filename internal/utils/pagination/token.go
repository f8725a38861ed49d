package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const offsetPrefix = "offset"

// EncodeOffsetToken creates an opaque page token for an offset into a provider's request list.
func EncodeOffsetToken(offset int) string {
	tokenStr := fmt.Sprintf("%s|%d", offsetPrefix, offset)
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeOffsetToken parses a page token back into an offset. An empty token means offset 0.
func DecodeOffsetToken(token string) (int, error) {
	if token == "" {
		return 0, nil
	}
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[0] != offsetPrefix {
		return 0, fmt.Errorf("invalid pagination token format (split)")
	}

	offset, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (offset parse): %w", err)
	}
	if offset < 0 {
		return 0, fmt.Errorf("invalid pagination token format (negative offset)")
	}
	return offset, nil
}

// NextOffsetToken returns the token of the page after one of pageLen items, or "" when the page was empty.
func NextOffsetToken(offset, pageLen int) string {
	if pageLen == 0 {
		return ""
	}
	return EncodeOffsetToken(offset + pageLen)
}
