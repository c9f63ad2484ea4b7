package constants_test

import (
	"fmt"

	"github.com/agentstation/e2settings/pkg/constants"
)

// Example shows how the bouquet file name constants compose.
func Example() {
	name := constants.UserBouquetPrefix + "00" + constants.TVExtension
	fmt.Println(name)
	fmt.Println(constants.DefaultFrequencyTolerance)
	// Output:
	// userbouquet.dbe00.tv
	// 30000
}
