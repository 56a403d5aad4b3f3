package main

import (
	"github.com/mrmeaow/erp-iam-secureid/cmd/erpiam/cmd"
	"github.com/mrmeaow/erp-iam-secureid/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cmd.Execute(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
