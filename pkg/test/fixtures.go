package test

import (
	"testing"

	"github.com/spf13/afero"
)

// SampleProjectRoot is the workspace root created by SetupSampleProject.
const SampleProjectRoot = "/work/Shop"

// SetupSampleProject lays out a small C# project:
//
//	/work/Shop/Shop.csproj
//	/work/Shop/Models/Order.cs
//	/work/Shop/obj/project.assets.json
func SetupSampleProject(t *testing.T, fs afero.Fs) {
	t.Helper()
	CreateTestFile(t, fs, SampleProjectRoot+"/Shop.csproj", "<Project Sdk=\"Microsoft.NET.Sdk\" />\n")
	CreateTestFile(t, fs, SampleProjectRoot+"/Models/Order.cs", "namespace Shop.Models;\n\npublic class Order\n{\n}\n")
	CreateTestFile(t, fs, SampleProjectRoot+"/obj/project.assets.json", "{}\n")
}
