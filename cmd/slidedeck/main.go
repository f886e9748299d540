package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/kyaoi/slidedeck/internal/app"
)

func main() {
	configPath := flag.String("config", "", "設定ファイルのパス")
	startSlide := flag.Int("slide", 0, "開始スライド番号 (保存された位置を無視)")
	theme := flag.String("theme", "", "glamourスタイル名")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: slidedeck [flags] <path-to-markdown-deck>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	target := filepath.Clean(flag.Arg(0))
	opts := app.Options{
		ConfigPath: *configPath,
		StartSlide: *startSlide,
		Theme:      *theme,
	}
	if err := app.Run(target, opts); err != nil {
		log.Fatal(err)
	}
}
