package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/client-greeter/config"
)

var _ = Describe("Config", func() {
	var (
		tempDir string
		origDir string
	)

	BeforeEach(func() {
		var err error
		origDir, err = os.Getwd()
		Expect(err).NotTo(HaveOccurred())

		tempDir, err = os.MkdirTemp("", "config-test-*")
		Expect(err).NotTo(HaveOccurred())

		Expect(os.Chdir(tempDir)).To(Succeed())
	})

	AfterEach(func() {
		Expect(os.Chdir(origDir)).To(Succeed())
		os.RemoveAll(tempDir)
		os.Unsetenv("LOGGING_LEVEL")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("SERVER_ADDRESS")
	})

	Describe("Load", func() {
		Context("without a config file", func() {
			It("should use defaults", func() {
				cfg, err := config.Load()
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Server.Address).To(Equal(config.DefaultAddress))
				Expect(cfg.Server.Environment).To(Equal(config.EnvDev))
				Expect(cfg.Logging.Level).To(Equal(config.LogLevelInfo))
				Expect(cfg.Metrics.BufferSize).To(Equal(1000))
			})
		})

		Context("with a valid config file", func() {
			BeforeEach(func() {
				configContent := `
server:
  address: "127.0.0.1:4000"
  environment: "prod"

logging:
  level: "warn"

metrics:
  buffer_size: 16
`
				configPath := filepath.Join(tempDir, "config.yaml")
				Expect(os.WriteFile(configPath, []byte(configContent), 0644)).To(Succeed())
			})

			It("should load configuration from the file", func() {
				cfg, err := config.Load()
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Server.Address).To(Equal("127.0.0.1:4000"))
				Expect(cfg.Server.Environment).To(Equal(config.EnvProd))
				Expect(cfg.Logging.Level).To(Equal(config.LogLevelWarn))
				Expect(cfg.Metrics.BufferSize).To(Equal(16))
			})

			It("should let environment variables override the file", func() {
				os.Setenv("LOGGING_LEVEL", "debug")

				cfg, err := config.Load()
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Logging.Level).To(Equal(config.LogLevelDebug))
			})
		})

		Context("with environment variables", func() {
			It("should accept LOG_LEVEL as an alias", func() {
				os.Setenv("LOG_LEVEL", "ERROR")

				cfg, err := config.Load()
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Logging.Level).To(Equal(config.LogLevelError))
			})

			It("should reject an unknown log level", func() {
				os.Setenv("LOGGING_LEVEL", "chatty")

				cfg, err := config.Load()
				Expect(err).To(HaveOccurred())
				Expect(cfg).To(BeNil())
			})

			It("should reject a malformed address", func() {
				os.Setenv("SERVER_ADDRESS", "invalid:host:port")

				cfg, err := config.Load()
				Expect(err).To(HaveOccurred())
				Expect(cfg).To(BeNil())
			})
		})

		Context("with a malformed config file", func() {
			It("should return the parse error", func() {
				configPath := filepath.Join(tempDir, "config.yaml")
				Expect(os.WriteFile(configPath, []byte("server: [unterminated"), 0644)).To(Succeed())

				_, err := config.Load()
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("Validate", func() {
		var cfg *config.Config

		BeforeEach(func() {
			cfg = &config.Config{
				Server:  config.ServerConfig{Address: ":3000", Environment: config.EnvStaging},
				Logging: config.LoggingConfig{Level: config.LogLevelInfo},
				Metrics: config.MetricsConfig{BufferSize: 1},
			}
		})

		It("should accept a complete configuration", func() {
			Expect(cfg.Validate()).To(Succeed())
		})

		It("should reject an unknown environment", func() {
			cfg.Server.Environment = "qa"
			Expect(cfg.Validate()).NotTo(Succeed())
		})

		It("should reject a zero metrics buffer", func() {
			cfg.Metrics.BufferSize = 0
			Expect(cfg.Validate()).NotTo(Succeed())
		})
	})

	Describe("ValidateHostPort", func() {
		DescribeTable("addresses",
			func(addr interface{}, valid bool) {
				err := config.ValidateHostPort(addr)
				if valid {
					Expect(err).NotTo(HaveOccurred())
				} else {
					Expect(err).To(HaveOccurred())
				}
			},
			Entry("loopback with port", "127.0.0.1:3000", true),
			Entry("hostname with port", "localhost:3000", true),
			Entry("port only", ":3000", true),
			Entry("missing port", "127.0.0.1", false),
			Entry("empty port", "127.0.0.1:", false),
			Entry("too many colons", "invalid:host:port", false),
			Entry("not a string", 3000, false),
		)
	})
})
