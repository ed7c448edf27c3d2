package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/common"
	"github.com/voteagora/agora-cli/internal/domain"
	"github.com/voteagora/agora-cli/internal/domain/config"
)

// TenantFileName is the optional per-project tenant configuration
const TenantFileName = "agora.toml"

// Config sources reported by `agora config`
const (
	SourceFile    = TenantFileName
	SourceBuiltin = "builtin"
)

// LoadTenantFile parses agora.toml from dir. Returns (nil, nil) if the file does not exist.
func LoadTenantFile(dir string) (*config.TenantFile, error) {
	path := filepath.Join(dir, TenantFileName)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	var file config.TenantFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", TenantFileName, err)
	}
	return &file, nil
}

// LoadTenant resolves the tenant for namespace. Values from agora.toml are
// laid over the builtin defaults for the namespace when both exist.
func LoadTenant(dir, namespace string) (*config.Tenant, string, error) {
	file, err := LoadTenantFile(dir)
	if err != nil {
		return nil, "", err
	}

	tenant, hasBuiltin := config.BuiltinTenants()[namespace]
	source := SourceBuiltin

	var fromFile config.Tenant
	inFile := false
	if file != nil {
		fromFile, inFile = file.Tenant[namespace]
	}

	switch {
	case inFile:
		mergeTenant(&tenant, fromFile)
		source = SourceFile
	case !hasBuiltin:
		return nil, "", fmt.Errorf("%w: %q", domain.ErrTenantNotFound, namespace)
	}

	tenant.Namespace = namespace
	if err := finalizeTenant(&tenant); err != nil {
		return nil, "", fmt.Errorf("tenant %s: %w", namespace, err)
	}
	return &tenant, source, nil
}

// mergeTenant overwrites base with every field set in overlay
func mergeTenant(base *config.Tenant, overlay config.Tenant) {
	if overlay.Name != "" {
		base.Name = overlay.Name
	}
	if overlay.ChainID != 0 {
		base.ChainID = overlay.ChainID
	}
	if overlay.RPCURL != "" {
		base.RPCURL = overlay.RPCURL
	}
	if overlay.Governor != "" {
		base.Governor = overlay.Governor
	}
	if overlay.Token != "" {
		base.Token = overlay.Token
	}
	if overlay.TokenSymbol != "" {
		base.TokenSymbol = overlay.TokenSymbol
	}
	if overlay.TokenDecimals != 0 {
		base.TokenDecimals = overlay.TokenDecimals
	}
	if overlay.DaoNodeURLTemplate != "" {
		base.DaoNodeURLTemplate = overlay.DaoNodeURLTemplate
	}
}

// finalizeTenant expands env references, fills defaults and validates addresses
func finalizeTenant(t *config.Tenant) error {
	var err error
	if t.RPCURL, err = expandRequired("rpc_url", t.RPCURL); err != nil {
		return err
	}
	if t.DaoNodeURLTemplate, err = expandRequired("dao_node_url_template", t.DaoNodeURLTemplate); err != nil {
		return err
	}
	if t.Governor, err = expandRequired("governor", t.Governor); err != nil {
		return err
	}
	if t.Token, err = expandRequired("token", t.Token); err != nil {
		return err
	}

	if t.Name == "" {
		t.Name = t.Namespace
	}
	if t.TokenDecimals == 0 {
		t.TokenDecimals = config.DefaultTokenDecimals
	}

	for field, addr := range map[string]string{"governor": t.Governor, "token": t.Token} {
		if addr == "" {
			continue
		}
		if !common.IsHexAddress(addr) {
			return fmt.Errorf("%w: %s %q", domain.ErrInvalidAddress, field, addr)
		}
	}
	if t.Governor != "" {
		t.Governor = common.HexToAddress(t.Governor).Hex()
	}
	if t.Token != "" {
		t.Token = common.HexToAddress(t.Token).Hex()
	}
	return nil
}
