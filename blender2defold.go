package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"github.com/mogaika/blender2defold/config"
	"github.com/mogaika/blender2defold/export"
	"github.com/mogaika/blender2defold/glb"
	"github.com/mogaika/blender2defold/scene"
	"github.com/mogaika/blender2defold/utils"
	"github.com/mogaika/blender2defold/web"
)

func main() {
	var configPath, scenePath, root, collection, object, listen string
	var assetsOnly, dump, verbose bool
	flag.StringVar(&configPath, "config", "", "Path to settings yaml (defaults used when empty)")
	flag.StringVar(&scenePath, "scene", "", "Path to scene dump json produced by the Blender addon")
	flag.StringVar(&root, "root", "", "Defold project root override")
	flag.StringVar(&collection, "collection", "", "Collection name override")
	flag.StringVar(&object, "object", "", "Export only the prototype tagged on this object")
	flag.BoolVar(&assetsOnly, "assets-only", false, "Refresh all prototype assets without writing the collection")
	flag.StringVar(&listen, "listen", "", "Run as http daemon on this address instead of one-shot export")
	flag.BoolVar(&dump, "dump", false, "Dump the decoded scene before exporting")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	log := logrus.StandardLogger()
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	settings := config.Default()
	if configPath != "" {
		var err error
		if settings, err = config.Load(configPath); err != nil {
			log.Fatal(err)
		}
	}
	if root != "" {
		settings.ProjectRoot = root
	}
	if collection != "" {
		settings.CollectionName = collection
	}

	mesh := glb.Exporter{}

	if listen != "" {
		if err := web.StartServer(listen, &settings, mesh, log); err != nil {
			log.Fatal(err)
		}
		return
	}

	if scenePath == "" {
		flag.PrintDefaults()
		return
	}

	sc, err := scene.Load(scenePath)
	if err != nil {
		log.Fatal(err)
	}
	if dump {
		utils.Dump(sc)
	}

	exporter := export.New(&settings, mesh, log)

	var report *export.Report
	switch {
	case object != "":
		report, err = exporter.ExportObject(sc, object)
	case assetsOnly:
		report, err = exporter.ExportAssets(sc)
	default:
		report, err = exporter.ExportScene(sc)
	}
	if err != nil {
		log.Fatal(err)
	}

	log.Infof("[export] done: %d prototypes, %d instances", report.Prototypes, report.Instances)
}
