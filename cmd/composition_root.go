package cmd

import (
	"time"

	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/pkg/token"

	"gorm.io/gorm"
)

const defaultTokenTTL = 24 * time.Hour

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	signer     token.Signer
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	ttl, err := time.ParseDuration(config.JWTTTL)
	if err != nil {
		ttl = defaultTokenTTL
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		signer:     token.NewSigner([]byte(config.JWTSecret), ttl),
	}
}

func (c *CompositionRoot) TokenSigner() token.Signer {
	return c.signer
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateAuthenticateUserCommandHandler() commands.AuthenticateUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAuthenticateUserCommandHandler(f, c.signer)
}

func (c *CompositionRoot) CreateUpdateUserCommandHandler() commands.UpdateUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateUserCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteUserCommandHandler(f)
}

func (c *CompositionRoot) CreateSelectPackagesCommandHandler() commands.SelectPackagesCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewSelectPackagesCommandHandler(f)
}

func (c *CompositionRoot) CreateEditPackageCommandHandler() commands.EditPackageCommandHandler {
	var f commands.PackageUoWFactory = FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditPackageCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePackageCommandHandler() commands.CreatePackageCommandHandler {
	var f commands.PackageUoWFactory = FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePackageCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdatePackageCommandHandler() commands.UpdatePackageCommandHandler {
	var f commands.PackageUoWFactory = FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePackageCommandHandler(f)
}

func (c *CompositionRoot) CreateDeletePackageCommandHandler() commands.DeletePackageCommandHandler {
	var f commands.PackageUoWFactory = FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeletePackageCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllPackagesQueryHandler() queries.GetAllPackagesQueryHandler {
	return queries.NewGetAllPackagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryPackagesQueryHandler() queries.GetDeliveryPackagesQueryHandler {
	return queries.NewGetDeliveryPackagesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryUsersQueryHandler() queries.GetDeliveryUsersQueryHandler {
	return queries.NewGetDeliveryUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountUnassignedPackagesQueryHandler() queries.CountUnassignedPackagesQueryHandler {
	return queries.NewCountUnassignedPackagesQueryHandler(c.gormDB)
}

type FuncPackageUoWFactory func() commands.PackageUoW

func (f FuncPackageUoWFactory) Create() commands.PackageUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
