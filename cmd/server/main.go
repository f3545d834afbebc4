package main

import (
	"flag"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"

	"dotsandboxes/internal/app"
	"dotsandboxes/internal/web"
)

var configFile = flag.String("f", "etc/server.yaml", "the config file")

type Config struct {
	Name string `json:",default=dotsandboxes-api"`
	Host string `json:",default=0.0.0.0"`
	Port int    `json:",default=8080"`
	Mode string `json:",default=release,options=debug|release|test"`
	Log  logx.LogConf
}

func main() {
	flag.Parse()

	var c Config
	conf.MustLoad(*configFile, &c)
	logx.MustSetup(c.Log)
	defer logx.Close()

	gin.SetMode(c.Mode)
	r := web.NewServer(app.NewService())

	addr := fmt.Sprintf("%s:%d", c.Host, c.Port)
	logx.Infof("Starting %s at %s...", c.Name, addr)
	if err := r.Run(addr); err != nil {
		logx.Must(err)
	}
}
