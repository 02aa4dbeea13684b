// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbols

import (
	"strings"

	"github.com/borisyanez/rustor-sub001/internal/ast"
	"github.com/borisyanez/rustor-sub001/internal/types"
)

// Collect runs the first-pass registration spec.md §4.3 describes: every
// declaration in program is registered into table under its fully
// qualified name (namespace prepended), and every use-declaration in
// the file is recorded as an alias so later class-name references can
// be resolved. Called once per file; results from many files are
// combined with Table.Merge.
func Collect(program *ast.Program, filePath string, table *Table) {
	aliases := make(map[string]string)
	collectAliases(program.Statements, aliases)
	table.SetAliases(filePath, aliases)
	registerDecls(program.Statements, "", filePath, table)
}

func collectAliases(stmts []ast.Stmt, aliases map[string]string) {
	for _, s := range stmts {
		switch n := s.(type) {
		case *ast.UseDecl:
			aliases[strings.ToLower(n.Alias)] = n.Path
		case *ast.NamespaceDecl:
			collectAliases(n.Body, aliases)
		}
	}
}

func registerDecls(stmts []ast.Stmt, namespace, filePath string, table *Table) {
	for _, s := range stmts {
		switch n := s.(type) {
		case *ast.NamespaceDecl:
			registerDecls(n.Body, n.Name, filePath, table)
		case *ast.ClassLike:
			registerClass(n, namespace, filePath, table)
		case *ast.FunctionDecl:
			info := NewFunctionInfo(qualify(namespace, n.Name))
			info.Params = n.Params
			if n.ReturnType != "" {
				info.ReturnType = types.ParseTypeString(n.ReturnType)
			}
			info.File = filePath
			table.RegisterFunction(info)
		case *ast.ConstDeclStmt:
			table.RegisterConstant(qualify(namespace, n.Name), types.Mixed)
		}
	}
}

func registerClass(n *ast.ClassLike, namespace, filePath string, table *Table) {
	info := NewClassInfo(qualify(namespace, n.Name))
	info.Kind = n.ClassKind
	info.File = filePath
	if n.Parent != "" {
		info.Parent = table.ResolveClassName(n.Parent, filePath, namespace)
	}
	for _, iface := range n.Interfaces {
		info.Interfaces = append(info.Interfaces, table.ResolveClassName(iface, filePath, namespace))
	}

	for _, m := range n.Members {
		switch member := m.(type) {
		case *ast.MethodDecl:
			var ret types.Type
			if member.ReturnType != "" {
				ret = types.ParseTypeString(member.ReturnType)
			}
			info.AddMethod(MethodInfo{
				Name:       member.Name,
				Visibility: member.Visibility,
				Static:     member.Static,
				Abstract:   member.Abstract,
				Params:     member.Params,
				ReturnType: ret,
			})
		case *ast.PropertyDecl:
			var ty types.Type
			if member.Type != "" {
				ty = types.ParseTypeString(member.Type)
			}
			info.AddProperty(PropertyInfo{
				Name:       member.Name,
				Visibility: member.Visibility,
				Static:     member.Static,
				Readonly:   member.Readonly,
				Type:       ty,
				HasDefault: member.HasDefault,
			})
		case *ast.ClassConstDecl:
			info.AddConstant(ConstantInfo{Name: member.Name, Type: types.Mixed})
		case *ast.UseTraitDecl:
			for _, trait := range member.Traits {
				info.Traits = append(info.Traits, table.ResolveClassName(trait, filePath, namespace))
			}
		}
	}

	table.RegisterClass(info)
}

func qualify(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return namespace + `\` + name
}
