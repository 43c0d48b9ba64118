// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the climate
// scenarios API.
//
// Each subcommand maps to one REST call made through adapter.APIClient and
// prints the decoded response as indented JSON.
package client
