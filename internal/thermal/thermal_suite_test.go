package thermal

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestThermalSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Thermal Suite")
}
