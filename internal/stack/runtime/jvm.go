package runtime

import "github.com/gizzahub/universalbuild/internal/model"

// JVM implements Definition for the Java/Kotlin family, grounded on
// original_source/src/runtimes/jvm.rs.
type JVM struct{ Base }

func (JVM) Name() string { return "jvm" }

func (JVM) BaseImage(version string) string { return version }

func (JVM) RuntimePackages() []string { return nil }

func (JVM) DefaultStartCommand() string { return "java -jar app.jar" }

func (j JVM) TryExtract(serviceFiles map[string]string, fw *model.FrameworkID) *model.RuntimeConfig {
	if fw != nil && *fw == model.FrameworkSpringBoot {
		return &model.RuntimeConfig{Port: 8080, Healthcheck: "/actuator/health", PortSource: "framework"}
	}
	return nil
}
