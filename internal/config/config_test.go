package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/ankihelper/internal/config"
)

var configEnv = []string{
	config.EnvOpenAIAPIKey,
	config.EnvOpenAIBaseURL,
	config.EnvOpenAIModel,
	config.EnvAnkiConnectURL,
	config.EnvDeckName,
	config.EnvServerAddress,
	config.EnvStaticDir,
}

// clearEnv unsets the config variables for the current test and restores them after.
func clearEnv() {
	for _, key := range configEnv {
		if old, ok := os.LookupEnv(key); ok {
			DeferCleanup(os.Setenv, key, old)
		} else {
			DeferCleanup(os.Unsetenv, key)
		}
		Expect(os.Unsetenv(key)).To(Succeed())
	}
}

func setEnv(key, value string) {
	Expect(os.Setenv(key, value)).To(Succeed())
}

var _ = Describe("Config", func() {
	var (
		testDir    string
		configPath string
	)

	writeConfig := func(content string) {
		Expect(os.WriteFile(configPath, []byte(content), 0644)).To(Succeed())
	}

	BeforeEach(func() {
		clearEnv()

		var err error
		testDir, err = os.MkdirTemp("", "config-test-*")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, testDir)

		configPath = filepath.Join(testDir, "config.yaml")
	})

	Context("when no config file exists", func() {
		It("should fail without an API key", func() {
			_, err := config.Load(configPath)
			Expect(err).To(MatchError(config.ErrMissingAPIKey))
		})

		It("should apply defaults when only the key is set", func() {
			setEnv(config.EnvOpenAIAPIKey, "sk-test")

			cfg, err := config.Load(configPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.OpenAI.APIKey).To(Equal("sk-test"))
			Expect(cfg.AnkiConnectURL).To(Equal("http://127.0.0.1:8765"))
			Expect(cfg.DeckName).To(Equal("Default"))
			Expect(cfg.OpenAI.Model).To(Equal("gpt-4o"))
			Expect(cfg.OpenAI.BaseURL).To(BeEmpty())
			Expect(cfg.Server.Address).To(Equal(":8080"))
			Expect(cfg.Server.StaticDir).To(Equal("wwwroot"))
			Expect(cfg.Server.IndexFile).To(Equal("index.html"))
		})
	})

	Context("when a config file exists", func() {
		BeforeEach(func() {
			writeConfig(`
anki_connect_url: http://anki.local:8765
deck_name: Danish
openai:
  api_key: sk-file
  model: gpt-4o-mini
server:
  address: ":9000"
`)
		})

		It("should read values from the file", func() {
			cfg, err := config.Load(configPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.OpenAI.APIKey).To(Equal("sk-file"))
			Expect(cfg.AnkiConnectURL).To(Equal("http://anki.local:8765"))
			Expect(cfg.DeckName).To(Equal("Danish"))
			Expect(cfg.OpenAI.Model).To(Equal("gpt-4o-mini"))
			Expect(cfg.Server.Address).To(Equal(":9000"))
		})

		It("should let environment variables win", func() {
			setEnv(config.EnvOpenAIAPIKey, "sk-env")
			setEnv(config.EnvAnkiConnectURL, "http://10.0.0.2:8765")
			setEnv(config.EnvDeckName, "Dansk::Ord")

			cfg, err := config.Load(configPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.OpenAI.APIKey).To(Equal("sk-env"))
			Expect(cfg.AnkiConnectURL).To(Equal("http://10.0.0.2:8765"))
			Expect(cfg.DeckName).To(Equal("Dansk::Ord"))
			Expect(cfg.Public().AnkiConnectURL).To(Equal("http://10.0.0.2:8765"))
			Expect(cfg.Public().DeckName).To(Equal("Dansk::Ord"))
		})

		It("should ignore empty environment variables", func() {
			setEnv(config.EnvDeckName, "")

			cfg, err := config.Load(configPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.DeckName).To(Equal("Danish"))
		})
	})

	It("should fail on malformed YAML", func() {
		setEnv(config.EnvOpenAIAPIKey, "sk-test")
		writeConfig("deck_name: [unterminated")

		_, err := config.Load(configPath)
		Expect(err).To(MatchError(ContainSubstring("failed to parse config")))
	})

	It("should fail when the key is blank in the file and unset in the environment", func() {
		writeConfig("openai:\n  api_key: \"\"\n")

		_, err := config.Load(configPath)
		Expect(err).To(MatchError(config.ErrMissingAPIKey))
	})
})
