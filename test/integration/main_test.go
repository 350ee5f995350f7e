package integration_test

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tejaIG/sevak-ai-poc/internal/config"
	"github.com/tejaIG/sevak-ai-poc/internal/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	os.Setenv("DATABASE_DRIVER", "memory")
	os.Setenv("JWT_SECRET", "integration-test-secret")
	os.Setenv("SERVER_ENV", "test")

	config.LoadConfig()
	logger.Init("test")

	os.Exit(m.Run())
}
