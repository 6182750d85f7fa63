package ioc

import (
	"github.com/ecodeclub/mailtriage/internal/notify"
	"github.com/ecodeclub/mailtriage/internal/notify/aliyun"
	mq "github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

// initConsumers 回执邮件可以整体关掉，关掉之后就没有任何消费者
func initConsumers(q mq.MQ) []Consumer {
	type Config struct {
		Enabled         bool   `yaml:"enabled"`
		AccessKeyID     string `yaml:"accessKeyID"`
		AccessKeySecret string `yaml:"accessKeySecret"`
		AccountName     string `yaml:"accountName"`
		From            string `yaml:"from"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("notify", &cfg); err != nil {
		panic(err)
	}
	if !cfg.Enabled {
		elog.Info("邮件回执未启用")
		return nil
	}
	sender, err := aliyun.NewAliyunDirectMailAPI(cfg.AccessKeyID, cfg.AccessKeySecret, cfg.AccountName)
	if err != nil {
		panic(err)
	}
	c, err := notify.NewAckConsumer(sender, q, cfg.From)
	if err != nil {
		panic(err)
	}
	return []Consumer{c}
}
