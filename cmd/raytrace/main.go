// Command raytrace renders a YAML scene description to a BMP image.
package main

import (
	"flag"
	"log/slog"
	"os"

	"raytracer"
	"raytracer/bvh"
	"raytracer/load"
	"raytracer/math/lin"
)

func main() {
	scenePath := flag.String("scene", "", "path to the scene YAML file")
	outPath := flag.String("out", "out.bmp", "output BMP path")
	width := flag.Int("width", 800, "output image width in pixels")
	height := flag.Int("height", 600, "output image height in pixels")
	reflectDepth := flag.Int("reflect-depth", 5, "maximum mirror-reflection recursion depth")
	motionSamples := flag.Int("motion-samples", 10, "world-space offset samples averaged per pixel for motion blur")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *scenePath == "" {
		logger.Error("missing required -scene flag")
		os.Exit(2)
	}

	sc, camSpec, err := load.Scene(*scenePath)
	if err != nil {
		logger.Error("load scene failed", "scene", *scenePath, "error", err)
		os.Exit(1)
	}
	logger.Info("scene loaded", "meshes", len(sc.Meshes), "spheres", len(sc.Spheres), "lights", len(sc.Lights))

	tree := bvh.New(sc)
	logger.Info("bvh built", "levels", tree.NumLevels())

	camera := raytracer.NewCamera(
		vec3(camSpec.Eye), vec3(camSpec.Center), vec3(camSpec.Up),
		nonZeroOr(camSpec.FovDegrees, 50), float32(*width)/float32(*height),
	)

	screen := raytracer.Render(sc, tree, camera,
		raytracer.Size(*width, *height),
		raytracer.ReflectDepth(*reflectDepth),
		raytracer.MotionSamples(*motionSamples),
	)

	out, err := os.Create(*outPath)
	if err != nil {
		logger.Error("create output file failed", "path", *outPath, "error", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := screen.WriteBMP(out); err != nil {
		logger.Error("write bmp failed", "path", *outPath, "error", err)
		os.Exit(1)
	}
	logger.Info("render complete", "out", *outPath, "width", *width, "height", *height)
}

func vec3(a [3]float32) lin.Vec3 { return lin.V3(a[0], a[1], a[2]) }

func nonZeroOr(v, fallback float32) float32 {
	if v == 0 {
		return fallback
	}
	return v
}
