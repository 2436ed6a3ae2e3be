package testioc

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/ecodeclub/chatter/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"gopkg.in/yaml.v3"
)

var db *egorm.Component

func InitDB() *egorm.Component {
	if db != nil {
		return db
	}
	if err := loadConfig(); err != nil {
		panic(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := ioc.WaitForDBSetup(ctx, econf.GetString("mysql.dsn")); err != nil {
		panic(err)
	}
	db = egorm.Load("mysql").Build()
	return db
}

var loaded bool

// loadConfig 从当前目录往上找 config/local.yaml，集成测试放在哪一层都可以
func loadConfig() error {
	if loaded {
		return nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	for {
		content, err := os.ReadFile(filepath.Join(dir, "config", "local.yaml"))
		if err == nil {
			err = econf.LoadFromReader(bytes.NewReader(content), yaml.Unmarshal)
			loaded = err == nil
			return err
		}
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return errors.New("没有找到 config/local.yaml")
		}
		dir = parent
	}
}
