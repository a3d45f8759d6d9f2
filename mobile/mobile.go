package mobile

import (
	"log"
	"net/http"

	"xiangqi/internal/config"
	"xiangqi/internal/logging"
	"xiangqi/internal/server/game"
	httpserver "xiangqi/internal/server/http"
	"xiangqi/internal/translate"
)

// StartServer 在本机端口启动翻译服务，供移动端内嵌调用。
// port 形如 "2888"，只监听 127.0.0.1
func StartServer(port string) {
	cfg, err := config.Load("")
	if err != nil {
		log.Printf("load config: %v", err)
		return
	}
	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		log.Printf("init logger: %v", err)
		return
	}

	tr := translate.New(cfg.Translate.Options(), logger)
	h := httpserver.NewHandler(tr, game.NewManager(), logger)

	// 后台运行，不阻塞 UI 线程
	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, httpserver.NewRouter(h)); err != nil {
			logger.Errorw("server error", "err", err)
		}
	}()
}
