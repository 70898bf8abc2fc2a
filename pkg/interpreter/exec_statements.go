package interpreter

import (
	"fmt"

	"simplelang/interpreter-go/pkg/ast"
	"simplelang/interpreter-go/pkg/runtime"
)

func (i *Interpreter) executeStatement(stmt ast.Statement) (err error) {
	defer func() {
		err = i.attachRuntimeContext(err, stmt)
	}()
	switch s := stmt.(type) {
	case *ast.VarDecl:
		return i.executeVarDecl(s)
	case *ast.PrintStmt:
		return i.executePrintStmt(s)
	case *ast.IfStmt:
		return i.executeIfStmt(s)
	case *ast.Block:
		return i.executeBlock(s)
	default:
		return fmt.Errorf("unsupported statement type: %s", stmt.NodeType())
	}
}

// executeVarDecl validates the declaration's type keyword against the
// evaluated value and binds it. Re-declaring an existing name overwrites the
// binding; the keyword is checked per declaration, never stored on the
// variable, so re-declaring under a different kind is legal.
func (i *Interpreter) executeVarDecl(decl *ast.VarDecl) error {
	value, err := i.evaluateExpression(decl.Value)
	if err != nil {
		return err
	}
	want := runtime.KindNumber
	if decl.DeclaredKind == ast.DeclText {
		want = runtime.KindText
	}
	if value.Kind() != want {
		return newDeclaredTypeMismatchError(decl.Name.Name, decl.DeclaredKind, value.Kind())
	}
	i.env.Define(decl.Name.Name, value)
	return nil
}

func (i *Interpreter) executePrintStmt(stmt *ast.PrintStmt) error {
	value, err := i.evaluateExpression(stmt.Value)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(i.out, runtime.Display(value))
	return err
}

func (i *Interpreter) executeIfStmt(stmt *ast.IfStmt) error {
	cond, err := i.evaluateCondition(stmt.Cond)
	if err != nil {
		return err
	}
	if cond {
		return i.executeBlock(stmt.Then)
	}
	if stmt.Else != nil {
		return i.executeBlock(stmt.Else)
	}
	return nil
}

// executeBlock runs statements against the shared environment. No new scope:
// declarations made here survive the block.
func (i *Interpreter) executeBlock(block *ast.Block) error {
	for _, stmt := range block.Statements {
		if err := i.executeStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}
