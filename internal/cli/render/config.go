package render

import (
	"fmt"
	"io"

	"github.com/voteagora/agora-cli/internal/domain/config"
	"github.com/voteagora/agora-cli/internal/usecase"
	"gopkg.in/yaml.v3"
)

// ConfigRenderer renders the resolved tenant configuration as YAML
type ConfigRenderer struct {
	out   io.Writer
	color bool
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer, color bool) *ConfigRenderer {
	return &ConfigRenderer{out: out, color: color}
}

type configView struct {
	Tenant   *config.Tenant `yaml:"tenant"`
	PageSize int            `yaml:"page_size"`
	CacheTTL string         `yaml:"cache_ttl"`
	Timeout  string         `yaml:"timeout"`
}

// Render renders the config result
func (r *ConfigRenderer) Render(result *usecase.ShowConfigResult) error {
	fmt.Fprintln(r.out, paint(r.color, faintStyle, "# source: "+result.Source))

	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(configView{
		Tenant:   result.Tenant,
		PageSize: result.PageSize,
		CacheTTL: result.CacheTTL,
		Timeout:  result.Timeout,
	}); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}

var _ Renderer[*usecase.ShowConfigResult] = (*ConfigRenderer)(nil)
