// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries build metadata injected by linker flags. The server
// prints it at startup and the health endpoint reports the version.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion returns the version the binary was built as.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// VersionOr returns the build version, or fallback when the binary was built
// without one ("N/A" or empty).
func (a AppBuildInfo) VersionOr(fallback string) string {
	if a.buildVersion == "" || a.buildVersion == "N/A" {
		return fallback
	}
	return a.buildVersion
}
