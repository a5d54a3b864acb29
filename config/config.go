package config

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/orbitbridge/depositkit/arbnetwork"
	"github.com/orbitbridge/depositkit/config/types"
	"github.com/orbitbridge/depositkit/deposit"
	ethermanconfig "github.com/orbitbridge/depositkit/etherman/config"
	"github.com/orbitbridge/depositkit/log"
	"github.com/orbitbridge/depositkit/prometheus"
	"github.com/orbitbridge/depositkit/signer"
	"github.com/orbitbridge/depositkit/txsender"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

const (
	// FlagCfg is the flag for cfg.
	FlagCfg = "cfg"
	// FlagNetwork is the flag for the L2 network descriptor file
	FlagNetwork = "network"
	// FlagEnvFile is the flag for the dotenv file
	FlagEnvFile = "env-file"
	// FlagSaveConfigPath is the flag to save the final configuration file
	FlagSaveConfigPath = "save-config-path"
	// FlagDisableDefaultConfigVars is the flag to force all variables to be set on config-files
	FlagDisableDefaultConfigVars = "disable-default-config-vars"
	// FlagAllowDeprecatedFields is the flag to allow deprecated fields
	FlagAllowDeprecatedFields = "allow-deprecated-fields"

	EnvVarPrefix       = "DEPOSITKIT"
	ConfigType         = "toml"
	SaveConfigFileName = "depositkit_config.toml"
	DefaultEnvFile     = ".env"

	// Legacy environment variables of the deposit script
	EnvPrivateKey = "DEVNET_PRIVKEY"
	EnvL1RPC      = "L1RPC"
	EnvL2RPC      = "L2RPC"

	DefaultCreationFilePermissions = os.FileMode(0600)

	envVarOnConfigFile = "L1RPC, L2RPC and DEVNET_PRIVKEY are environment variables, " +
		"use L1.URL, L2.URL and Signer.PrivateKey on config files"
	privateKeyOnDeposit = "Deposit.PrivateKey is not supported, use Signer.PrivateKey"
	routerOnNetwork     = "L2Network.Router is not supported, use L2Network.TokenBridge.L1GatewayRouter " +
		"or Deposit.RouterAddr"
)

type DeprecatedFieldsError struct {
	// key is the rule and the value is the field's name that matches the rule
	Fields map[DeprecatedField][]string
}

func NewErrDeprecatedFields() *DeprecatedFieldsError {
	return &DeprecatedFieldsError{
		Fields: make(map[DeprecatedField][]string),
	}
}

func (e *DeprecatedFieldsError) AddDeprecatedField(fieldName string, rule DeprecatedField) {
	p := e.Fields[rule]
	e.Fields[rule] = append(p, fieldName)
}

func (e *DeprecatedFieldsError) Error() string {
	res := "found deprecated fields:"
	for rule, fieldsMatches := range e.Fields {
		res += fmt.Sprintf("\n\t- %s: %s", rule.Reason, strings.Join(fieldsMatches, ", "))
	}
	return res
}

type DeprecatedField struct {
	// If the field name ends with a dot means that match a section
	FieldNamePattern string
	Reason           string
}

var (
	deprecatedFieldsOnConfig = []DeprecatedField{
		{
			FieldNamePattern: "L1RPC",
			Reason:           envVarOnConfigFile,
		},
		{
			FieldNamePattern: "L2RPC",
			Reason:           envVarOnConfigFile,
		},
		{
			FieldNamePattern: "DEVNET_PRIVKEY",
			Reason:           envVarOnConfigFile,
		},
		{
			FieldNamePattern: "Deposit.PrivateKey",
			Reason:           privateKeyOnDeposit,
		},
		{
			FieldNamePattern: "L2Network.Router",
			Reason:           routerOnNetwork,
		},
	}
)

/*
Config represents the configuration of a depositkit run
The file is [TOML format]

[TOML format]: https://en.wikipedia.org/wiki/TOML
*/
type Config struct {
	// Configure Log level for all the services, allow also to store the logs in a file
	Log log.Config `mapstructure:"Log"`

	// L1 is the RPC endpoint of the parent chain
	L1 ethermanconfig.RPCClientConfig `mapstructure:"L1"`

	// L2 is the RPC endpoint of the Orbit chain
	L2 ethermanconfig.RPCClientConfig `mapstructure:"L2"`

	// Signer holds the wallet key used for the direct sender
	Signer signer.SignerConfig `mapstructure:"Signer"`

	// NetworkFile is a JSON L2 network descriptor. Takes precedence over L2Network
	NetworkFile string `jsonschema:"omitempty" mapstructure:"NetworkFile"`

	// L2Network is the inline L2 network descriptor
	L2Network arbnetwork.L2Network `jsonschema:"omitempty" mapstructure:"L2Network"`

	// Deposit is the token deposit to perform
	Deposit deposit.Config `mapstructure:"Deposit"`

	// TxSender configures how transactions are signed, sent and monitored
	TxSender txsender.Config `mapstructure:"TxSender"`

	// Prometheus is the configuration of the metrics push
	Prometheus prometheus.Config `mapstructure:"Prometheus"`
}

// Load loads the configuration
func Load(ctx *cli.Context) (*Config, error) {
	if err := LoadEnvFile(ctx.String(FlagEnvFile)); err != nil {
		return nil, err
	}
	configFilePath := ctx.StringSlice(FlagCfg)
	filesData, err := readFiles(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading files:  Err:%w", err)
	}
	saveConfigPath := ctx.String(FlagSaveConfigPath)
	defaultConfigVars := !ctx.Bool(FlagDisableDefaultConfigVars)
	allowDeprecatedFields := ctx.Bool(FlagAllowDeprecatedFields)
	cfg, err := LoadFile(filesData, saveConfigPath, defaultConfigVars, allowDeprecatedFields)
	if err != nil {
		return nil, err
	}
	if networkFile := ctx.String(FlagNetwork); networkFile != "" {
		cfg.NetworkFile = networkFile
	}
	return cfg, nil
}

// LoadEnvFile loads a dotenv file without overriding variables already set.
// The default file is optional, any other one must exist
func LoadEnvFile(path string) error {
	if path == "" {
		path = DefaultEnvFile
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil
		}
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("error loading env file %s. Err: %w", path, err)
	}
	return nil
}

func readFiles(files []string) ([]FileData, error) {
	result := make([]FileData, 0, len(files))
	for _, file := range files {
		fileContent, err := readFileToString(file)
		if err != nil {
			return nil, fmt.Errorf("error reading file content: %s. Err:%w", file, err)
		}
		fileExtension := getFileExtension(file)
		if fileExtension != ConfigType && fileExtension != "" {
			fileContent, err = convertFileToToml(fileContent, fileExtension)
			if err != nil {
				return nil, fmt.Errorf("error converting file: %s from %s to TOML. Err:%w", file, fileExtension, err)
			}
		}
		result = append(result, FileData{Name: file, Content: fileContent})
	}
	return result, nil
}

func readFileToString(file string) (string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func getFileExtension(fileName string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
}

// LoadFileFromString decodes an already rendered configuration
func LoadFileFromString(configFileData string, configType string) (*Config, error) {
	cfg := &Config{}
	err := loadString(cfg, configFileData, configType, true, EnvVarPrefix)
	if err != nil {
		return cfg, err
	}
	return cfg, nil
}

// SaveConfigToFile writes the final configuration. Signer secrets are never written
func SaveConfigToFile(cfg *Config, saveConfigPath string) error {
	redacted := *cfg
	if redacted.Signer.PrivateKey != "" {
		redacted.Signer.PrivateKey = redactedValue
	}
	if len(cfg.Signer.Config) > 0 {
		redacted.Signer.Config = make(map[string]interface{}, len(cfg.Signer.Config))
		for k, v := range cfg.Signer.Config {
			if isSecretKey(k) {
				v = redactedValue
			}
			redacted.Signer.Config[k] = v
		}
	}
	marshaled, err := toml.Marshal(redacted)
	if err != nil {
		log.Errorf("Can't marshal config to toml. Err: %v", err)
		return err
	}
	return SaveDataToFile(saveConfigPath, "final config file", marshaled)
}

func SaveDataToFile(fullPath, reason string, data []byte) error {
	log.Infof("Writing %s to: %s", reason, fullPath)
	err := os.WriteFile(fullPath, data, DefaultCreationFilePermissions)
	if err != nil {
		err = fmt.Errorf("error writing %s to file %s. Err: %w", reason, fullPath, err)
		log.Error(err)
		return err
	}
	return nil
}

// LoadFile merges the defaults with the given files, renders the result and decodes it
func LoadFile(files []FileData, saveConfigPath string,
	setDefaultVars bool, allowDeprecatedFields bool) (*Config, error) {
	log.Debugf("Loading configuration: saveConfigPath: %s, setDefaultVars: %t, allowDeprecatedFields: %t",
		saveConfigPath, setDefaultVars, allowDeprecatedFields)
	fileData := make([]FileData, 0, len(files)+3) //nolint:mnd
	if setDefaultVars {
		log.Debug("Setting default vars")
		fileData = append(fileData, FileData{Name: "default_mandatory_vars", Content: DefaultMandatoryVars})
	}
	fileData = append(fileData, FileData{Name: "default_vars", Content: DefaultVars})
	fileData = append(fileData, FileData{Name: "default_values", Content: DefaultValues})
	fileData = append(fileData, files...)

	merger := NewConfigRender(fileData, EnvVarPrefix)

	renderedCfg, err := merger.Render()
	if err != nil {
		return nil, err
	}
	if saveConfigPath != "" {
		fullPath := filepath.Join(saveConfigPath, fmt.Sprintf("%s.merged", SaveConfigFileName))
		err = SaveDataToFile(fullPath, "merged config file", []byte(redactSecrets(renderedCfg)))
		if err != nil {
			return nil, err
		}
	}
	cfg, err := LoadFileFromString(renderedCfg, ConfigType)
	// If allowDeprecatedFields is true, we ignore the deprecated fields
	if err != nil && allowDeprecatedFields {
		var customErr *DeprecatedFieldsError
		if errors.As(err, &customErr) {
			log.Warnf("detected deprecated fields: %s", err.Error())
			err = nil
		}
	}

	if err != nil {
		return nil, err
	}
	if saveConfigPath != "" {
		fullPath := filepath.Join(saveConfigPath, SaveConfigFileName)
		err = SaveConfigToFile(cfg, fullPath)
		if err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func loadString(cfg *Config, configData string, configType string,
	allowEnvVars bool, envPrefix string) error {
	v := viper.New()
	v.SetConfigType(configType)
	if allowEnvVars {
		replacer := strings.NewReplacer(".", "_")
		v.SetEnvKeyReplacer(replacer)
		v.SetEnvPrefix(envPrefix)
		v.AutomaticEnv()
		if err := bindLegacyEnvVars(v); err != nil {
			return err
		}
	}
	err := v.ReadConfig(bytes.NewBuffer([]byte(configData)))
	if err != nil {
		return err
	}
	decodeHooks := []viper.DecoderConfigOption{
		// this allows arrays to be decoded from env var separated by ",", example: MY_VAR="value1,value2,value3"
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			bigIntHookFunc(),
			emptyAddressHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)),
	}

	err = v.Unmarshal(&cfg, decodeHooks...)
	if err != nil {
		return err
	}
	configKeys := v.AllKeys()
	err = checkDeprecatedFields(configKeys)
	if err != nil {
		return err
	}

	return nil
}

// bindLegacyEnvVars keeps the environment of the original deposit script working.
// The DEPOSITKIT_ prefixed variables still win over them
func bindLegacyEnvVars(v *viper.Viper) error {
	bindings := map[string]string{
		"L1.URL":            EnvL1RPC,
		"L2.URL":            EnvL2RPC,
		"Signer.PrivateKey": EnvPrivateKey,
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, envVarName(EnvVarPrefix, key), env); err != nil {
			return fmt.Errorf("binding env var %s to %s: %w", env, key, err)
		}
	}
	return nil
}

func envVarName(prefix, key string) string {
	return prefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// bigIntHookFunc decodes plain TOML integers into types.BigInt, strings go through UnmarshalText
func bigIntHookFunc() mapstructure.DecodeHookFuncType {
	bigIntType := reflect.TypeOf(types.BigInt{})
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != bigIntType {
			return data, nil
		}
		switch n := data.(type) {
		case int64:
			return types.NewBigInt(big.NewInt(n)), nil
		case int:
			return types.NewBigInt(big.NewInt(int64(n))), nil
		case uint64:
			return types.NewBigInt(new(big.Int).SetUint64(n)), nil
		case float64:
			if n != float64(int64(n)) {
				return nil, fmt.Errorf("amount %v is not an integer", n)
			}
			return types.NewBigInt(big.NewInt(int64(n))), nil
		}
		return data, nil
	}
}

// emptyAddressHookFunc decodes "" as the zero address, UnmarshalText rejects it
func emptyAddressHookFunc() mapstructure.DecodeHookFuncType {
	addressType := reflect.TypeOf(common.Address{})
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != addressType || f.Kind() != reflect.String {
			return data, nil
		}
		if strings.TrimSpace(reflect.ValueOf(data).String()) == "" {
			return common.Address{}, nil
		}
		return data, nil
	}
}

const redactedValue = "<redacted>"

func isSecretKey(key string) bool {
	return strings.EqualFold(key, "PrivateKey") || strings.EqualFold(key, "Password")
}

// redactSecrets hides the value of every PrivateKey and Password line of a TOML document
func redactSecrets(renderedCfg string) string {
	lines := strings.Split(renderedCfg, "\n")
	for i, line := range lines {
		key, _, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if isSecretKey(key) {
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			lines[i] = fmt.Sprintf("%s%s = %q", indent, key, redactedValue)
		}
	}
	return strings.Join(lines, "\n")
}

func checkDeprecatedFields(keysOnConfig []string) error {
	err := NewErrDeprecatedFields()
	for _, key := range keysOnConfig {
		forbbidenInfo := getDeprecatedField(key)
		if forbbidenInfo != nil {
			err.AddDeprecatedField(key, *forbbidenInfo)
		}
	}
	if len(err.Fields) > 0 {
		return err
	}
	return nil
}

func getDeprecatedField(fieldName string) *DeprecatedField {
	for _, deprecatedField := range deprecatedFieldsOnConfig {
		if strings.EqualFold(deprecatedField.FieldNamePattern, fieldName) {
			return &deprecatedField
		}
		// If the field name ends with a dot, it means FieldNamePattern*
		if deprecatedField.FieldNamePattern[len(deprecatedField.FieldNamePattern)-1] == '.' &&
			strings.HasPrefix(strings.ToLower(fieldName), strings.ToLower(deprecatedField.FieldNamePattern)) {
			return &deprecatedField
		}
	}
	return nil
}
