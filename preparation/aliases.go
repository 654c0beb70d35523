// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package preparation

import (
	"github.com/emcd/appcore/internal/config"
	"github.com/emcd/appcore/internal/distribution"
	"github.com/emcd/appcore/internal/environment"
	"github.com/emcd/appcore/internal/logger"
)

// Configuration acquisition.
type (
	Acquirer           = config.Acquirer
	Edit               = config.Edit
	EditFunc           = config.EditFunc
	SimpleEdit         = config.SimpleEdit
	ElementsEntryEdit  = config.ElementsEntryEdit
	Entry              = config.Entry
	Source             = config.Source
	TomlOptions        = config.TomlOptions
	ParseError         = config.ParseError
	IncludeError       = config.IncludeError
	AddressLocateError = config.AddressLocateError
)

// Distribution detection.
type (
	LocatorOptions = distribution.Options
	MetadataIndex  = distribution.MetadataIndex
	Metadata       = distribution.Metadata
	LocateError    = distribution.LocateError
)

// Environment and inscription.
type (
	Snapshot           = environment.Snapshot
	InscriptionControl = logger.Control
	InscriptionMode    = logger.Mode
	Logger             = logger.Logger
)

// Inscription modes.
const (
	InscriptionNull  = logger.ModeNull
	InscriptionPlain = logger.ModePlain
	InscriptionRich  = logger.ModeRich
)

// Errors surfaced by Prepare.
var (
	ErrLocateFailure     = distribution.ErrLocateFailure
	ErrParseFailure      = config.ErrParseFailure
	ErrIncludeNotFound   = config.ErrIncludeNotFound
	ErrDependencyAbsence = config.ErrDependencyAbsence
)

var (
	FileSource   = config.FileSource
	ReaderSource = config.ReaderSource
	NewSnapshot  = environment.NewSnapshot
)
