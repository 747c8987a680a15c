// Package mocks provides generated mock implementations for testing.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks
// for backend port interfaces. The mocks are generated using go:generate
// directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockUsers := mocks.NewMockUserAPI(ctrl)
//	mockUsers.EXPECT().RoleOf(gomock.Any(), "chef@example.com").Return(auth.RoleChef, nil)
package mocks

// Generate mock for UserAPI: RoleOf, Profile, List, MarkFraud.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=user_api_mock.go github.com/SowvikSuvo/chefbazaar-gateway/internal/ports UserAPI

// Generate mock for StatsAPI: Fetch.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=stats_api_mock.go github.com/SowvikSuvo/chefbazaar-gateway/internal/ports StatsAPI
