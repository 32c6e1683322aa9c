package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{"separate value", []string{"-c", "conf.json", "-a", "localhost"}, []string{"-c"}, []string{"-c", "conf.json"}},
		{"equals form", []string{"-d=/tmp/well.db", "-a", "x"}, []string{"-d"}, []string{"-d=/tmp/well.db"}},
		{"unknown ignored", []string{"-x", "1", "--y=2", "positional"}, []string{"-c"}, []string{}},
		{"trailing flag without value", []string{"-s"}, []string{"-s"}, []string{"-s"}},
		{"next token is a flag", []string{"-c", "-i", "5s"}, []string{"-c"}, []string{"-c"}},
		{"several allowed keep order", []string{"-a", "h:1", "-x", "y", "-i", "2s"}, []string{"-i", "-a"}, []string{"-a", "h:1", "-i", "2s"}},
		{"repeated flag", []string{"-c", "one.json", "-c", "two.json"}, []string{"-c"}, []string{"-c", "one.json", "-c", "two.json"}},
		{"empty", nil, []string{"-c"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "/etc/well.json", ConfigPath([]string{"-a", "h:1", "-c", "/etc/well.json"}))
	assert.Equal(t, "/etc/long.json", ConfigPath([]string{"-config=/etc/long.json"}))
	assert.Equal(t, "/p/2.json", ConfigPath([]string{"-c", "/p/1.json", "-config", "/p/2.json"}))
	assert.Empty(t, ConfigPath([]string{"-x", "1"}))
}
