// Package mocks provides centralized mock implementations for testing.
//
// Two styles are available. Function-field mocks (MockUserStore,
// MockJWTService, MockBucketListService, ...) fall back to simple in-memory or
// default-value behavior when a field is left nil. TestifyMockUserStore is
// built on testify/mock for tests that assert on exact calls.
//
// Usage:
//
//	import "github.com/phrazzld/bucketlist-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    jwtService := &mocks.MockJWTService{
//	        GenerateTokenFn: func(ctx context.Context, userID int64) (string, error) {
//	            return "mocked-token", nil
//	        },
//	    }
//
//	    // Use the mock in your test...
//	}
//
// When adding a new mock, name the file after the interface being mocked and
// give it a function field for each interface method.
package mocks
