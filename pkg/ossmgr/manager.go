// Package ossmgr wires configuration, logging and the OSS client together
// for the command line tool and for embedders that want the same one-call
// setup. The signing and decoding packages never read configuration; this
// is the only place credentials come from.
package ossmgr

import (
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/vip30/aliyun-oss/pkg/oss"
)

type Manager struct {
	Client *oss.Client
	Logger logrus.FieldLogger
	Cfg    *viper.Viper
}

// NewManager builds a configured client. Recognized options:
//
//	"config-file" (string): explicit config file path
//	"logger" (logrus.FieldLogger): custom logger
//
// Endpoint and credentials come from the config file or from the
// OSS_ENDPOINT, OSS_ACCESS_KEY_ID and OSS_ACCESS_KEY_SECRET environment
// variables.
func NewManager(userCfg map[string]interface{}) (*Manager, error) {
	var err error
	mgr := &Manager{}

	if loggerRaw, ok := userCfg["logger"]; ok {
		if logger, ok := loggerRaw.(logrus.FieldLogger); ok {
			mgr.Logger = logger
		} else {
			return nil, errors.New("option 'logger' must satisfy logrus.FieldLogger")
		}
	} else {
		mgr.Logger = logrus.New()
	}

	if cfgPathRaw, ok := userCfg["config-file"]; ok {
		if cfgPath, ok := cfgPathRaw.(string); ok {
			err = mgr.initConfig(&cfgPath)
		} else {
			return nil, errors.New("option 'config-file' must be of type string")
		}
	} else {
		err = mgr.initConfig(nil)
	}
	if err != nil {
		return nil, err
	}

	endpoint := mgr.Cfg.GetString("endpoint")
	if endpoint == "" {
		return nil, errors.New("no endpoint in configuration")
	}
	creds := oss.Credentials{
		AccessKeyID:     mgr.Cfg.GetString("access-key-id"),
		AccessKeySecret: mgr.Cfg.GetString("access-key-secret"),
	}
	if creds.AccessKeyID == "" || creds.AccessKeySecret == "" {
		return nil, errors.New("no credentials in configuration")
	}

	mgr.Client, err = oss.New(endpoint, creds, mgr.Logger)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to build client")
	}
	return mgr, nil
}

// DefaultBucket is the configured fallback bucket, empty when unset.
func (self *Manager) DefaultBucket() string {
	return self.Cfg.GetString("bucket")
}

func (self *Manager) initConfig(cfgPath *string) error {
	// This is a private viper context (so as not to conflict with the
	// importer's usage).
	self.Cfg = viper.New()

	self.Cfg.BindEnv("endpoint", "OSS_ENDPOINT")
	self.Cfg.BindEnv("access-key-id", "OSS_ACCESS_KEY_ID")
	self.Cfg.BindEnv("access-key-secret", "OSS_ACCESS_KEY_SECRET")
	self.Cfg.BindEnv("bucket", "OSS_BUCKET")

	if cfgPath != nil {
		// Use config file from the flag; it must exist.
		self.Cfg.SetConfigFile(*cfgPath)
		if err := self.Cfg.ReadInConfig(); err != nil {
			return errors.Wrap(err, "Failed to load config")
		}
		return nil
	}

	// Default search path is ./configs/oss.* and ~/.oss/oss.*; running
	// on environment variables alone is fine.
	self.Cfg.AddConfigPath("./configs")
	if home, err := homedir.Dir(); err == nil {
		self.Cfg.AddConfigPath(filepath.Join(home, ".oss"))
	}
	self.Cfg.SetConfigName("oss")

	if err := self.Cfg.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return errors.Wrap(err, "Failed to load config")
		}
	}
	return nil
}
