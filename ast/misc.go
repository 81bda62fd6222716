package ast

type Identifier string

type QualifiedIdentifier string
