package config

import (
	"strings"
)

// DaoNodeURLEnv names the environment variable holding the indexer URL template
const DaoNodeURLEnv = "DAONODE_URL_TEMPLATE"

// NamespacePlaceholder is replaced with the tenant namespace in the template
const NamespacePlaceholder = "{TENANT_NAMESPACE}"

// DaoNodeURL resolves the indexer base URL for a tenant. It returns an empty
// string when no template is configured; otherwise the result always ends
// in a slash.
func DaoNodeURL(template, namespace string) string {
	if template == "" {
		return ""
	}
	url := strings.ReplaceAll(template, NamespacePlaceholder, namespace)
	if !strings.HasSuffix(url, "/") {
		url += "/"
	}
	return url
}
